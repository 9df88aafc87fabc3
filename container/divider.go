package container

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"

	"oledpanel/fonts"
	"oledpanel/pixel"
)

// Orientation selects the divider's line direction.
type Orientation uint8

const (
	Horizontal Orientation = iota + 1
	Vertical
)

// Divider draws a single separating line through the middle of its
// rectangle. It has no data source.
type Divider struct {
	base
	orientation Orientation
}

// NewDivider returns a divider widget.
func NewDivider(name string, o Orientation) *Divider {
	return &Divider{base: newBase(name), orientation: o}
}

func (v *Divider) Update() {}

func (v *Divider) Render(d drivers.Displayer, fs *fonts.Set) {
	if !v.begin(d) {
		return
	}
	r := v.rect
	if v.orientation == Vertical {
		x := int16(r.X + r.W/2)
		tinydraw.Line(d, x, int16(r.Y), x, int16(r.Y+r.H-1), pixel.On)
		return
	}
	y := int16(r.Y + r.H/2)
	tinydraw.Line(d, int16(r.X), y, int16(r.X+r.W-1), y, pixel.On)
}
