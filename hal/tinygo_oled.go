//go:build tinygo

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// SSD1306 commands used for controls the driver does not wrap.
const (
	cmdSetContrast  = 0x81
	cmdNormalVideo  = 0xA6
	cmdInverseVideo = 0xA7
)

var (
	pixelOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pixelOff = color.RGBA{A: 0xFF}
)

type serialLogger struct{}

func (serialLogger) WriteLineString(s string) { println(s) }
func (serialLogger) WriteLineBytes(b []byte)  { println(string(b)) }

// NewLogger returns a line logger writing to the default serial output.
func NewLogger() Logger { return serialLogger{} }

// OLEDSink drives an SSD1306 panel on the default machine I2C bus.
type OLEDSink struct {
	dev    ssd1306.Device
	width  int
	height int
}

// NewOLEDSink configures I2C0 and initializes the panel controller.
func NewOLEDSink(cfg OLEDConfig) (*OLEDSink, error) {
	addr := cfg.Addr
	if addr == 0 {
		addr = DefaultOLEDAddr
	}
	if err := machine.I2C0.Configure(machine.I2CConfig{Frequency: 400_000}); err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Address: addr,
		Width:   int16(cfg.Width),
		Height:  int16(cfg.Height),
	})
	dev.ClearDisplay()

	s := &OLEDSink{dev: dev, width: cfg.Width, height: cfg.Height}
	if cfg.Contrast != 0 {
		s.SetContrast(cfg.Contrast)
	}
	if cfg.Inverted {
		s.SetInvert(true)
	}
	return s, nil
}

func (s *OLEDSink) Flush(f Frame) error {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := pixelOff
			if f.Bit(x, y) {
				c = pixelOn
			}
			s.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return s.dev.Display()
}

func (s *OLEDSink) SetPower(on bool) error {
	return s.dev.Sleep(!on)
}

func (s *OLEDSink) SetContrast(level uint8) error {
	s.dev.Command(cmdSetContrast)
	s.dev.Command(level)
	return nil
}

func (s *OLEDSink) SetInvert(inverted bool) error {
	if inverted {
		s.dev.Command(cmdInverseVideo)
	} else {
		s.dev.Command(cmdNormalVideo)
	}
	return nil
}
