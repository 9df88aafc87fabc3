// Package pixel provides the shared 1-bit drawing surface.
//
// Surface implements drivers.Displayer, so tinyfont and tinydraw draw
// into it directly; it also implements hal.Frame so sinks can read the
// finished frame back out.
package pixel

import "image/color"

// On and Off are the two colors of the surface. Any color at or above
// half brightness in one channel counts as On.
var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}
)

// Surface is a packed 1bpp framebuffer, row-major, MSB-first within
// each byte.
type Surface struct {
	width  int
	height int
	stride int // bytes per row
	buf    []byte
}

// NewSurface returns a cleared width x height surface.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 7) / 8
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Size implements drivers.Displayer.
func (s *Surface) Size() (x, y int16) {
	return int16(s.width), int16(s.height)
}

// SetPixel implements drivers.Displayer. Out-of-range writes are
// dropped.
func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= s.width || iy < 0 || iy >= s.height {
		return
	}
	off := iy*s.stride + ix/8
	mask := byte(0x80) >> (ix % 8)
	if c.R >= 0x80 || c.G >= 0x80 || c.B >= 0x80 {
		s.buf[off] |= mask
	} else {
		s.buf[off] &^= mask
	}
}

// Display implements drivers.Displayer. The surface is memory-only;
// pushing a frame to hardware is the sink's job.
func (s *Surface) Display() error { return nil }

// Bit implements hal.Frame.
func (s *Surface) Bit(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.buf[y*s.stride+x/8]&(byte(0x80)>>(x%8)) != 0
}

// Clear resets every pixel to the background bit.
func (s *Surface) Clear() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}

// Count returns the number of lit pixels.
func (s *Surface) Count() int {
	n := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.Bit(x, y) {
				n++
			}
		}
	}
	return n
}
