// Package fonts maps logical font names to compiled-in tinyfont faces
// and exposes the measurements the widgets need.
package fonts

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"oledpanel/hal"
)

// Logical font names the widgets look up.
const (
	Icon = "icon"
	Text = "text"
)

// Defaults used when a logical name is missing from the set.
var (
	defaultIcon tinyfont.Fonter = &freemono.Bold9pt7b
	defaultText tinyfont.Fonter = &proggy.TinySZ8pt7b
)

// Set resolves logical font names. A missing name falls back to the
// package default for that role and logs a warning once.
type Set struct {
	faces  map[string]tinyfont.Fonter
	log    hal.Logger
	warned map[string]bool
}

// NewSet returns a set preloaded with the default icon and text faces.
func NewSet(log hal.Logger) *Set {
	return &Set{
		faces: map[string]tinyfont.Fonter{
			Icon: defaultIcon,
			Text: defaultText,
		},
		log:    log,
		warned: map[string]bool{},
	}
}

// Add registers or replaces a face under a logical name.
func (s *Set) Add(name string, f tinyfont.Fonter) {
	s.faces[name] = f
}

// Get returns the face for name, falling back to a default when the
// name is unknown. Rendering never fails on a missing font.
func (s *Set) Get(name string) tinyfont.Fonter {
	if f, ok := s.faces[name]; ok {
		return f
	}
	if !s.warned[name] {
		s.warned[name] = true
		if s.log != nil {
			s.log.WriteLineString("fonts: no face for " + name + ", using default")
		}
	}
	if name == Icon {
		return defaultIcon
	}
	return defaultText
}

// LineWidth returns the outer box width of text in the named face.
func (s *Set) LineWidth(name, text string) int {
	_, outbox := tinyfont.LineWidth(s.Get(name), text)
	return int(outbox)
}

// LineHeight returns the line advance of the named face.
func (s *Set) LineHeight(name string) int {
	return int(s.Get(name).GetYAdvance())
}
