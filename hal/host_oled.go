//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// OLEDSink drives an SSD1306 panel over a kernel I2C bus.
type OLEDSink struct {
	bus      i2c.BusCloser
	dev      *ssd1306.Dev
	opts     ssd1306.Opts
	img      *image.Gray
	contrast uint8
	inverted bool
}

// NewOLEDSink opens the I2C bus and initializes the panel controller.
func NewOLEDSink(cfg OLEDConfig) (*OLEDSink, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("oled: host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("oled: open i2c bus %q: %w", cfg.Bus, err)
	}

	opts := ssd1306.Opts{
		W:          cfg.Width,
		H:          cfg.Height,
		Rotated:    cfg.Rotated,
		Sequential: true,
	}
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("oled: init ssd1306: %w", err)
	}

	s := &OLEDSink{
		bus:      bus,
		dev:      dev,
		opts:     opts,
		img:      image.NewGray(image.Rect(0, 0, cfg.Width, cfg.Height)),
		contrast: cfg.Contrast,
		inverted: cfg.Inverted,
	}
	if cfg.Contrast != 0 {
		if err := dev.SetContrast(cfg.Contrast); err != nil {
			bus.Close()
			return nil, fmt.Errorf("oled: set contrast: %w", err)
		}
	}
	if cfg.Inverted {
		if err := dev.Invert(true); err != nil {
			bus.Close()
			return nil, fmt.Errorf("oled: invert: %w", err)
		}
	}
	return s, nil
}

func (s *OLEDSink) Flush(f Frame) error {
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v uint8
			if f.Bit(x, y) {
				v = 0xFF
			}
			s.img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return s.dev.Draw(s.dev.Bounds(), s.img, image.Point{})
}

// SetPower turns the panel off via a controller halt, and back on by
// reinitializing the controller and restoring contrast and inversion.
// The stale buffer is not re-pushed; the next Flush repaints.
func (s *OLEDSink) SetPower(on bool) error {
	if !on {
		return s.dev.Halt()
	}
	dev, err := ssd1306.NewI2C(s.bus, &s.opts)
	if err != nil {
		return fmt.Errorf("oled: reinit ssd1306: %w", err)
	}
	s.dev = dev
	if s.contrast != 0 {
		if err := s.dev.SetContrast(s.contrast); err != nil {
			return err
		}
	}
	if s.inverted {
		if err := s.dev.Invert(true); err != nil {
			return err
		}
	}
	return nil
}

func (s *OLEDSink) SetContrast(level uint8) error {
	s.contrast = level
	return s.dev.SetContrast(level)
}

func (s *OLEDSink) SetInvert(inverted bool) error {
	s.inverted = inverted
	return s.dev.Invert(inverted)
}

// Close halts the panel and releases the bus.
func (s *OLEDSink) Close() error {
	err := s.dev.Halt()
	if cerr := s.bus.Close(); err == nil {
		err = cerr
	}
	return err
}
