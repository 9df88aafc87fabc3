// Package container implements the widgets a compositor paints into
// layout areas: metrics, service status icons, text lines, dividers and
// plain icons.
//
// The set of widgets is closed. Every widget shares the same contract:
// the compositor assigns its rectangle once, Update pulls fresh content
// from the widget's source, and Render paints into a transient drawing
// handle. A failing source degrades the widget's displayed value to an
// unavailable sentinel; it never propagates past the widget.
package container

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"

	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
	"oledpanel/pixel"
)

// Sentinel shown in place of a value whose source failed.
const unavailable = "N/A"

// MetricSource reads one numeric sample.
type MetricSource func() (float64, error)

// StatusSource reads one boolean status.
type StatusSource func() (bool, error)

// TextSource reads one line of text.
type TextSource func() (string, error)

// Container is a widget bound to one rectangle, refreshed and painted
// once per tick.
type Container interface {
	Name() string
	// SetPosition assigns the widget's rectangle. The compositor calls
	// it exactly once, at registration.
	SetPosition(r layout.Rect)
	Show()
	Hide()
	// Update refreshes content from the widget's sources. Source
	// failures are absorbed here.
	Update()
	// Render paints the widget. It is a no-op while hidden.
	Render(d drivers.Displayer, fs *fonts.Set)

	sealed()
}

// base carries the state and behavior every widget shares.
type base struct {
	name    string
	rect    layout.Rect
	visible bool
	debug   bool
}

func newBase(name string) base {
	return base{name: name, visible: true}
}

func (b *base) Name() string              { return b.name }
func (b *base) SetPosition(r layout.Rect) { b.rect = r }
func (b *base) Show()                     { b.visible = true }
func (b *base) Hide()                     { b.visible = false }
func (b *base) sealed()                   {}

// SetDebugOutline toggles an unfilled rectangle at the widget's bounds,
// drawn before the widget's own content.
func (b *base) SetDebugOutline(on bool) { b.debug = on }

// begin reports whether the widget should paint, drawing the debug
// outline first when enabled.
func (b *base) begin(d drivers.Displayer) bool {
	if !b.visible {
		return false
	}
	if b.debug {
		tinydraw.Rectangle(d, int16(b.rect.X), int16(b.rect.Y),
			int16(b.rect.W), int16(b.rect.H), pixel.On)
	}
	return true
}

// baselineIn returns the WriteLine baseline that vertically centers a
// text box of the given line height inside r.
func baselineIn(r layout.Rect, lineHeight int) int16 {
	top := r.Y + (r.H-lineHeight)/2
	return int16(top + lineHeight - 1)
}

func logLine(l hal.Logger, s string) {
	if l != nil {
		l.WriteLineString(s)
	}
}
