// Package hal is the only contact point between the panel core and the
// outside world: logging, and the physical display sink.
package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Frame is a read-only view of one rendered 1-bit frame.
type Frame interface {
	Width() int
	Height() int
	// Bit reports whether the pixel at (x, y) is lit. Out-of-range
	// coordinates read as unlit.
	Bit(x, y int) bool
}

// Sink drives a physical monochrome display. Flush pushes a complete
// frame; the other methods map to panel hardware controls and may be
// best-effort on platforms that lack them.
type Sink interface {
	Flush(f Frame) error
	SetPower(on bool) error
	SetContrast(level uint8) error
	SetInvert(inverted bool) error
}

var ErrNotImplemented = errors.New("not implemented")
