package hal

// MemorySink is an in-memory Sink. It records the last flushed frame
// and the hardware control calls it receives; tests and headless runs
// use it in place of a physical panel.
type MemorySink struct {
	width  int
	height int

	// FlushErr, when non-nil, is returned by Flush without recording
	// the frame.
	FlushErr error

	bits     []bool
	flushes  int
	power    bool
	contrast uint8
	inverted bool
}

// NewMemorySink returns a sink for a width x height panel, powered on.
func NewMemorySink(width, height int) *MemorySink {
	return &MemorySink{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
		power:  true,
	}
}

func (s *MemorySink) Flush(f Frame) error {
	if s.FlushErr != nil {
		return s.FlushErr
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.bits[y*s.width+x] = f.Bit(x, y)
		}
	}
	s.flushes++
	return nil
}

func (s *MemorySink) SetPower(on bool) error {
	s.power = on
	return nil
}

func (s *MemorySink) SetContrast(level uint8) error {
	s.contrast = level
	return nil
}

func (s *MemorySink) SetInvert(inverted bool) error {
	s.inverted = inverted
	return nil
}

// Bit reports the pixel at (x, y) in the last flushed frame.
func (s *MemorySink) Bit(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.bits[y*s.width+x]
}

// Flushes returns the number of successful Flush calls.
func (s *MemorySink) Flushes() int { return s.flushes }

// Powered reports the last power state set on the sink.
func (s *MemorySink) Powered() bool { return s.power }
