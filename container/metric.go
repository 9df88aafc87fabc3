package container

import (
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
	"oledpanel/pixel"
)

// Metric shows one numeric sample under an icon glyph: the glyph is
// centered in the upper third of the rectangle, the formatted value in
// the lower half.
type Metric struct {
	base
	glyph  string
	unit   string
	source MetricSource
	log    hal.Logger

	value       float64
	unavailable bool
}

// NewMetric returns a metric widget reading from src.
func NewMetric(name, glyph, unit string, src MetricSource, log hal.Logger) *Metric {
	return &Metric{
		base:        newBase(name),
		glyph:       glyph,
		unit:        unit,
		source:      src,
		log:         log,
		unavailable: true,
	}
}

func (m *Metric) Update() {
	v, err := m.source()
	if err != nil {
		logLine(m.log, "metric "+m.name+": "+err.Error())
		m.unavailable = true
		return
	}
	m.value = v
	m.unavailable = false
}

func (m *Metric) Render(d drivers.Displayer, fs *fonts.Set) {
	if !m.begin(d) {
		return
	}

	upper := layout.Rect{X: m.rect.X, Y: m.rect.Y, W: m.rect.W, H: m.rect.H / 3}
	iw := fs.LineWidth(fonts.Icon, m.glyph)
	ix := int16(m.rect.X + (m.rect.W-iw)/2)
	tinyfont.WriteLine(d, fs.Get(fonts.Icon), ix,
		baselineIn(upper, fs.LineHeight(fonts.Icon)), m.glyph, pixel.On)

	lower := layout.Rect{
		X: m.rect.X,
		Y: m.rect.Y + m.rect.H/2,
		W: m.rect.W,
		H: m.rect.H - m.rect.H/2,
	}
	text := m.formatValue()
	tw := fs.LineWidth(fonts.Text, text)
	tx := int16(m.rect.X + (m.rect.W-tw)/2)
	tinyfont.WriteLine(d, fs.Get(fonts.Text), tx,
		baselineIn(lower, fs.LineHeight(fonts.Text)), text, pixel.On)
}

// formatValue renders the last sample. Percentages are truncated to
// whole numbers; other units keep the raw value.
func (m *Metric) formatValue() string {
	if m.unavailable {
		return unavailable
	}
	if m.unit == "%" {
		return strconv.Itoa(int(m.value)) + "%"
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64) + m.unit
}
