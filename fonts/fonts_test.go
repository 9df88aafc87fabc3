package fonts

import (
	"strings"
	"testing"
)

type lineRecorder struct {
	lines []string
}

func (r *lineRecorder) WriteLineString(s string) { r.lines = append(r.lines, s) }
func (r *lineRecorder) WriteLineBytes(b []byte)  { r.lines = append(r.lines, string(b)) }

func TestGetKnownFaces(t *testing.T) {
	s := NewSet(nil)
	if s.Get(Icon) == nil {
		t.Fatalf("Get(icon) = nil")
	}
	if s.Get(Text) == nil {
		t.Fatalf("Get(text) = nil")
	}
}

func TestMissingFaceFallsBackWithOneWarning(t *testing.T) {
	rec := &lineRecorder{}
	s := NewSet(rec)

	if s.Get("banner") == nil {
		t.Fatalf("Get(banner) = nil, want default face")
	}
	s.Get("banner")
	s.Get("banner")

	if len(rec.lines) != 1 {
		t.Fatalf("warnings = %d, want 1 (%v)", len(rec.lines), rec.lines)
	}
	if !strings.Contains(rec.lines[0], "banner") {
		t.Fatalf("warning %q does not name the missing face", rec.lines[0])
	}
}

func TestMeasurements(t *testing.T) {
	s := NewSet(nil)

	if w := s.LineWidth(Text, "host"); w <= 0 {
		t.Errorf("LineWidth(text, host) = %d, want > 0", w)
	}
	if h := s.LineHeight(Text); h <= 0 {
		t.Errorf("LineHeight(text) = %d, want > 0", h)
	}
	short := s.LineWidth(Text, "ab")
	long := s.LineWidth(Text, "abcdef")
	if short >= long {
		t.Errorf("LineWidth ab = %d not shorter than abcdef = %d", short, long)
	}
}
