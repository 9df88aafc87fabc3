package container

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"oledpanel/fonts"
	"oledpanel/pixel"
)

// Icon shows a single static glyph centered in its rectangle. It has
// no data source.
type Icon struct {
	base
	glyph string
}

// NewIcon returns an icon widget.
func NewIcon(name, glyph string) *Icon {
	return &Icon{base: newBase(name), glyph: glyph}
}

func (c *Icon) Update() {}

func (c *Icon) Render(d drivers.Displayer, fs *fonts.Set) {
	if !c.begin(d) {
		return
	}
	w := fs.LineWidth(fonts.Icon, c.glyph)
	x := int16(c.rect.X + (c.rect.W-w)/2)
	tinyfont.WriteLine(d, fs.Get(fonts.Icon), x,
		baselineIn(c.rect, fs.LineHeight(fonts.Icon)), c.glyph, pixel.On)
}
