package container

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/pixel"
)

// textPadding is the horizontal inset for left and right alignment.
const textPadding = 2

// Align positions a text line inside its rectangle.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text shows a single line composed of a fixed prefix and a sourced
// string, truncated to a character limit with a ".." marker.
type Text struct {
	base
	prefix   string
	source   TextSource
	align    Align
	maxChars int // 0 means no limit
	log      hal.Logger

	text string
}

// NewText returns a text widget reading from src.
func NewText(name, prefix string, src TextSource, align Align, maxChars int, log hal.Logger) *Text {
	return &Text{
		base:     newBase(name),
		prefix:   prefix,
		source:   src,
		align:    align,
		maxChars: maxChars,
		log:      log,
		text:     unavailable,
	}
}

func (t *Text) Update() {
	s, err := t.source()
	if err != nil {
		logLine(t.log, "text "+t.name+": "+err.Error())
		t.text = unavailable
		return
	}
	t.text = s
}

func (t *Text) Render(d drivers.Displayer, fs *fonts.Set) {
	if !t.begin(d) {
		return
	}

	s := t.line()
	width := fs.LineWidth(fonts.Text, s)
	var x int
	switch t.align {
	case AlignCenter:
		x = t.rect.X + (t.rect.W-width)/2
	case AlignRight:
		x = t.rect.X + t.rect.W - width - textPadding
	default:
		x = t.rect.X + textPadding
	}

	tinyfont.WriteLine(d, fs.Get(fonts.Text), int16(x),
		baselineIn(t.rect, fs.LineHeight(fonts.Text)), s, pixel.On)
}

// line composes the displayed string: prefix plus the last sourced
// text, truncated to the character limit with a ".." marker.
func (t *Text) line() string {
	s := t.prefix + t.text
	if t.maxChars > 2 && len(s) > t.maxChars {
		s = s[:t.maxChars-2] + ".."
	}
	return s
}
