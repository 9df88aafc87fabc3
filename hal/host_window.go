//go:build !tinygo

package hal

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"oledpanel/internal/buildinfo"
)

// windowScale is the on-screen magnification of the simulated panel.
const windowScale = 4

// WindowSink is a simulated panel shown in a desktop window. Flushed
// frames are snapshotted under a lock and presented by the window loop.
type WindowSink struct {
	mu       sync.Mutex
	width    int
	height   int
	bits     []bool
	power    bool
	inverted bool
}

// NewWindowSink returns a simulated width x height panel.
func NewWindowSink(width, height int) *WindowSink {
	return &WindowSink{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
		power:  true,
	}
}

func (s *WindowSink) Flush(f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.bits[y*s.width+x] = f.Bit(x, y)
		}
	}
	return nil
}

func (s *WindowSink) SetPower(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.power = on
	return nil
}

func (s *WindowSink) SetContrast(level uint8) error { return nil }

func (s *WindowSink) SetInvert(inverted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inverted = inverted
	return nil
}

func (s *WindowSink) snapshot(dst []bool) (power, inverted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.bits)
	return s.power, s.inverted
}

// RunWindow opens a desktop window presenting the sink and calls step
// once per frame. It blocks until the window closes, step fails, or the
// context is canceled.
func RunWindow(ctx context.Context, sink *WindowSink, step func() error) error {
	g := &panelGame{ctx: ctx, sink: sink, step: step}
	ebiten.SetWindowTitle("oledpanel (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(sink.width*windowScale, sink.height*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type panelGame struct {
	ctx     context.Context
	sink    *WindowSink
	step    func() error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []bool
}

func (g *panelGame) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *panelGame) Draw(screen *ebiten.Image) {
	w, h := g.sink.width, g.sink.height
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]bool, w*h)
		g.fbImg = ebiten.NewImage(w, h)
	}

	power, inverted := g.sink.snapshot(g.scratch)

	dst := g.img.Pix
	for i, lit := range g.scratch {
		if inverted {
			lit = !lit
		}
		var v byte
		if lit && power {
			v = 0xFF
		}
		j := i * 4
		dst[j+0] = v
		dst[j+1] = v
		dst[j+2] = v
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *panelGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sink.width, g.sink.height
}
