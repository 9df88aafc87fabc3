package container

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"

	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
	"oledpanel/pixel"
)

const (
	defaultIconCell = 16
	iconSpacing     = 2
	crossPadding    = 2
)

// Service binds a display glyph to a status source.
type Service struct {
	Name   string
	Glyph  string
	Source StatusSource
}

type serviceState struct {
	active      bool
	unavailable bool
}

// ServiceIcons shows one glyph per monitored service in a grid of at
// most two columns, centered in the rectangle. Inactive or unavailable
// services get two crossing diagonal lines over their cell.
type ServiceIcons struct {
	base
	services []Service
	states   []serviceState
	cell     int // icon cell edge in pixels
	log      hal.Logger
}

// NewServiceIcons returns a widget for the given services. Order is
// preserved; the grid is filled row-major.
func NewServiceIcons(name string, services []Service, log hal.Logger) *ServiceIcons {
	return &ServiceIcons{
		base:     newBase(name),
		services: services,
		states:   make([]serviceState, len(services)),
		cell:     defaultIconCell,
		log:      log,
	}
}

// SetIconCell overrides the icon cell edge length.
func (c *ServiceIcons) SetIconCell(px int) {
	if px > 0 {
		c.cell = px
	}
}

// Update polls every status source independently. One failing provider
// marks only its own service unavailable.
func (c *ServiceIcons) Update() {
	for i, svc := range c.services {
		active, err := svc.Source()
		if err != nil {
			logLine(c.log, "service "+svc.Name+": "+err.Error())
			c.states[i] = serviceState{unavailable: true}
			continue
		}
		c.states[i] = serviceState{active: active}
	}
}

func (c *ServiceIcons) Render(d drivers.Displayer, fs *fonts.Set) {
	if !c.begin(d) {
		return
	}
	n := len(c.services)
	if n == 0 {
		return
	}

	columns := n
	if columns > 2 {
		columns = 2
	}
	rows := (n + columns - 1) / columns

	totalW := columns*c.cell + (columns-1)*iconSpacing
	totalH := rows*c.cell + (rows-1)*iconSpacing
	startX := c.rect.X + (c.rect.W-totalW)/2
	startY := c.rect.Y + (c.rect.H-totalH)/2

	font := fs.Get(fonts.Icon)
	for i, svc := range c.services {
		col := i % columns
		row := i / columns
		x := startX + col*(c.cell+iconSpacing)
		y := startY + row*(c.cell+iconSpacing)

		cellRect := layout.Rect{X: x, Y: y, W: c.cell, H: c.cell}
		gw := fs.LineWidth(fonts.Icon, svc.Glyph)
		gx := int16(x + (c.cell-gw)/2)
		tinyfont.WriteLine(d, font, gx,
			baselineIn(cellRect, fs.LineHeight(fonts.Icon)), svc.Glyph, pixel.On)

		st := c.states[i]
		if !st.active || st.unavailable {
			x0 := int16(x + crossPadding)
			y0 := int16(y + crossPadding)
			x1 := int16(x + c.cell - crossPadding)
			y1 := int16(y + c.cell - crossPadding)
			tinydraw.Line(d, x0, y0, x1, y1, pixel.On)
			tinydraw.Line(d, x0, y1, x1, y0, pixel.On)
		}
	}
}
