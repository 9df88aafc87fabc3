package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	return g
}

func TestNewInvalidCanvas(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 32}, {128, 0}, {-1, 32}, {128, -5}} {
		if _, err := New(tc.w, tc.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tc.w, tc.h, err)
		}
	}
}

func TestRootSpansCanvas(t *testing.T) {
	g := mustGrid(t, 128, 32)
	root, err := g.Get(RootName)
	if err != nil {
		t.Fatalf("Get(root) error = %v", err)
	}
	want := Rect{X: 0, Y: 0, W: 128, H: 32}
	if root.Rect != want {
		t.Fatalf("root rect = %+v, want %+v", root.Rect, want)
	}
}

func TestGetMissing(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAddAreaBounds(t *testing.T) {
	g := mustGrid(t, 128, 32)

	if _, err := g.AddArea("wide", Rect{X: 0, Y: 0, W: 129, H: 32}, ""); !errors.Is(err, ErrBounds) {
		t.Errorf("AddArea(wide) error = %v, want ErrBounds", err)
	}
	if _, err := g.AddArea("tall", Rect{X: 0, Y: 30, W: 10, H: 10}, ""); !errors.Is(err, ErrBounds) {
		t.Errorf("AddArea(tall) error = %v, want ErrBounds", err)
	}
	if _, err := g.AddArea("neg", Rect{X: -1, Y: 0, W: 10, H: 10}, ""); !errors.Is(err, ErrBounds) {
		t.Errorf("AddArea(neg) error = %v, want ErrBounds", err)
	}
}

func TestAddAreaDuplicate(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.AddArea("a", Rect{W: 10, H: 10}, ""); err != nil {
		t.Fatalf("AddArea(a) error = %v", err)
	}
	if _, err := g.AddArea("a", Rect{W: 5, H: 5}, ""); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("AddArea(a) again error = %v, want ErrDuplicateName", err)
	}
	if _, err := g.AddArea(RootName, Rect{W: 5, H: 5}, ""); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("AddArea(root) error = %v, want ErrDuplicateName", err)
	}
}

func TestAddAreaParent(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.AddArea("box", Rect{X: 10, Y: 10, W: 20, H: 20}, ""); err != nil {
		t.Fatalf("AddArea(box) error = %v", err)
	}

	if _, err := g.AddArea("in", Rect{X: 12, Y: 12, W: 8, H: 8}, "box"); err != nil {
		t.Fatalf("AddArea(in, parent=box) error = %v", err)
	}
	// Inside the canvas but outside the parent.
	if _, err := g.AddArea("out", Rect{X: 40, Y: 10, W: 8, H: 8}, "box"); !errors.Is(err, ErrBounds) {
		t.Errorf("AddArea(out, parent=box) error = %v, want ErrBounds", err)
	}
	if _, err := g.AddArea("orphan", Rect{W: 4, H: 4}, "ghost"); !errors.Is(err, ErrParentNotFound) {
		t.Errorf("AddArea(orphan, parent=ghost) error = %v, want ErrParentNotFound", err)
	}

	parent, ok, err := g.Parent("in")
	if err != nil || !ok || parent != "box" {
		t.Fatalf("Parent(in) = %q, %v, %v, want box", parent, ok, err)
	}
}

// checkTiling verifies the children cover the parent exactly with no
// overlap.
func checkTiling(t *testing.T, parent Rect, children []*Area) {
	t.Helper()
	covered := make(map[[2]int]string)
	for _, c := range children {
		for y := c.Rect.Y; y < c.Rect.Y+c.Rect.H; y++ {
			for x := c.Rect.X; x < c.Rect.X+c.Rect.W; x++ {
				if !parent.Contains(x, y) {
					t.Fatalf("child %q pixel (%d,%d) outside parent %+v", c.Name, x, y, parent)
				}
				if prev, dup := covered[[2]int{x, y}]; dup {
					t.Fatalf("pixel (%d,%d) covered by both %q and %q", x, y, prev, c.Name)
				}
				covered[[2]int{x, y}] = c.Name
			}
		}
	}
	if got, want := len(covered), parent.W*parent.H; got != want {
		t.Fatalf("children cover %d pixels, want %d", got, want)
	}
}

func TestSplitTiling(t *testing.T) {
	cases := []struct {
		name  string
		axis  Axis
		count int
		sizes []float64
	}{
		{"equal-thirds-width", AlongWidth, 3, nil},
		{"equal-halves-height", AlongHeight, 2, nil},
		{"fractional-width", AlongWidth, 3, []float64{0.2, 0.3, 0.5}},
		{"fractional-height", AlongHeight, 4, []float64{0.1, 0.2, 0.3, 0.4}},
		{"awkward-sevenths", AlongWidth, 7, nil},
		{"single", AlongHeight, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 127, 33)
			children, err := g.Split(RootName, tc.axis, tc.count, tc.sizes)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(children) != tc.count {
				t.Fatalf("Split() returned %d children, want %d", len(children), tc.count)
			}
			root, _ := g.Get(RootName)
			checkTiling(t, root.Rect, children)
		})
	}
}

func TestSplitRemainderToLast(t *testing.T) {
	g := mustGrid(t, 128, 32)
	children, err := g.Split(RootName, AlongHeight, 2, []float64{0.85, 0.15})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	// floor(32*0.85) = 27; the last child absorbs 32-27 = 5, not
	// floor(32*0.15) = 4.
	if got := children[0].Rect.H; got != 27 {
		t.Errorf("children[0] height = %d, want 27", got)
	}
	if got := children[1].Rect.H; got != 5 {
		t.Errorf("children[1] height = %d, want 5", got)
	}
}

func TestSplitChildNames(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Split(RootName, AlongWidth, 3, nil); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	got, err := g.Children(RootName)
	if err != nil {
		t.Fatalf("Children(root) error = %v", err)
	}
	want := []string{"root_0", "root_1", "root_2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("child names mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitInvalidSizes(t *testing.T) {
	cases := []struct {
		name  string
		count int
		sizes []float64
	}{
		{"sum-under", 2, []float64{0.5, 0.4}},
		{"sum-over", 2, []float64{0.6, 0.6}},
		{"wrong-len", 3, []float64{0.5, 0.5}},
		{"zero-entry", 2, []float64{0.0, 1.0}},
		{"negative-entry", 2, []float64{-0.5, 1.5}},
		{"zero-count", 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 128, 32)
			if _, err := g.Split(RootName, AlongWidth, tc.count, tc.sizes); !errors.Is(err, ErrInvalidSizes) {
				t.Fatalf("Split() error = %v, want ErrInvalidSizes", err)
			}
		})
	}
}

func TestSplitInvalidAxis(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Split(RootName, Axis(9), 2, nil); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("Split(axis=9) error = %v, want ErrInvalidAxis", err)
	}
}

func TestSplitMissingArea(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Split("missing", AlongWidth, 2, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Split(missing) error = %v, want ErrNotFound", err)
	}
}

func TestResplitForbidden(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Split(RootName, AlongWidth, 2, nil); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if _, err := g.Split(RootName, AlongWidth, 2, nil); !errors.Is(err, ErrAlreadySplit) {
		t.Fatalf("second Split() error = %v, want ErrAlreadySplit", err)
	}
	// Splitting a fresh child is still allowed.
	if _, err := g.Split("root_0", AlongHeight, 2, nil); err != nil {
		t.Fatalf("Split(root_0) error = %v", err)
	}
}

func TestSplitNestedStaysInsideParent(t *testing.T) {
	g := mustGrid(t, 128, 32)
	if _, err := g.Split(RootName, AlongHeight, 2, []float64{0.4, 0.6}); err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	children, err := g.Split("root_1", AlongWidth, 3, nil)
	if err != nil {
		t.Fatalf("Split(root_1) error = %v", err)
	}
	parent, _ := g.Get("root_1")
	checkTiling(t, parent.Rect, children)
}

func TestCreateGrid(t *testing.T) {
	g := mustGrid(t, 128, 32)
	cells, err := g.CreateGrid(RootName, 2, 3)
	if err != nil {
		t.Fatalf("CreateGrid() error = %v", err)
	}
	if len(cells) != 2 || len(cells[0]) != 3 {
		t.Fatalf("CreateGrid() shape = %dx%d, want 2x3", len(cells), len(cells[0]))
	}
	if got, want := cells[1][2].Name, "root_1_2"; got != want {
		t.Errorf("cell name = %q, want %q", got, want)
	}

	// Row-major cells tile the whole canvas.
	var flat []*Area
	for _, row := range cells {
		flat = append(flat, row...)
	}
	root, _ := g.Get(RootName)
	checkTiling(t, root.Rect, flat)
}

func TestCreateGridInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 3}, {2, 0}, {-1, -1}} {
		g := mustGrid(t, 128, 32)
		if _, err := g.CreateGrid(RootName, tc.rows, tc.cols); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("CreateGrid(%d, %d) error = %v, want ErrInvalidDimensions", tc.rows, tc.cols, err)
		}
	}
}
