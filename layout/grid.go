// Package layout partitions a fixed-size pixel canvas into a tree of
// named, non-overlapping rectangles.
//
// Areas are created once and never move or resize afterwards; a split is
// a one-time commitment per area. Splits tile their parent exactly: the
// last child absorbs the rounding remainder, so no pixel is lost or
// covered twice regardless of the fractional sizes requested.
package layout

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound          = errors.New("layout: area not found")
	ErrDuplicateName     = errors.New("layout: duplicate area name")
	ErrBounds            = errors.New("layout: area out of bounds")
	ErrParentNotFound    = errors.New("layout: parent area not found")
	ErrInvalidSizes      = errors.New("layout: invalid split sizes")
	ErrInvalidAxis       = errors.New("layout: invalid split axis")
	ErrInvalidDimensions = errors.New("layout: invalid dimensions")
	ErrAlreadySplit      = errors.New("layout: area already split")
)

// Rect is a pixel rectangle. All fields are non-negative.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Axis selects the extent a split divides.
type Axis uint8

const (
	// AlongWidth places children side by side, dividing the width.
	AlongWidth Axis = iota + 1
	// AlongHeight stacks children top to bottom, dividing the height.
	AlongHeight
)

// RootName is the name of the area spanning the whole canvas.
const RootName = "root"

// splitEpsilon is the tolerance on the sum of fractional split sizes.
const splitEpsilon = 0.001

// Area is a named rectangle in the layout tree. The rectangle is fixed
// at creation time.
type Area struct {
	Name string
	Rect Rect

	id       int
	parent   int // -1 for the root
	children []int
}

// HasChildren reports whether the area has been split or had child
// areas added under it.
func (a *Area) HasChildren() bool { return len(a.children) > 0 }

// Grid owns the area tree for one fixed-size canvas.
//
// Areas live in an arena indexed by a stable integer id; names resolve
// through a lookup table. Name uniqueness is enforced at insertion.
type Grid struct {
	width  int
	height int
	areas  []*Area
	ids    map[string]int
}

// New creates a grid whose root area spans (0,0,width,height).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		ids:    map[string]int{},
	}
	root := &Area{
		Name:   RootName,
		Rect:   Rect{X: 0, Y: 0, W: width, H: height},
		id:     0,
		parent: -1,
	}
	g.areas = append(g.areas, root)
	g.ids[RootName] = 0
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Get returns the named area.
func (g *Grid) Get(name string) (*Area, error) {
	id, ok := g.ids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return g.areas[id], nil
}

// AddArea registers a new rectangle under the given parent. An empty
// parent name attaches the area to the root. The rectangle must lie
// within the canvas and, when a parent is named, within the parent's
// rectangle.
func (g *Grid) AddArea(name string, r Rect, parent string) (*Area, error) {
	if _, exists := g.ids[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 ||
		r.X+r.W > g.width || r.Y+r.H > g.height {
		return nil, fmt.Errorf("%w: %q (%d,%d,%d,%d) exceeds canvas %dx%d",
			ErrBounds, name, r.X, r.Y, r.W, r.H, g.width, g.height)
	}

	parentID := 0
	if parent != "" {
		id, ok := g.ids[parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrParentNotFound, parent)
		}
		parentID = id
		p := g.areas[parentID].Rect
		if r.X < p.X || r.Y < p.Y || r.X+r.W > p.X+p.W || r.Y+r.H > p.Y+p.H {
			return nil, fmt.Errorf("%w: %q (%d,%d,%d,%d) exceeds parent %q",
				ErrBounds, name, r.X, r.Y, r.W, r.H, parent)
		}
	}

	a := &Area{
		Name:   name,
		Rect:   r,
		id:     len(g.areas),
		parent: parentID,
	}
	g.areas = append(g.areas, a)
	g.ids[name] = a.id
	g.areas[parentID].children = append(g.areas[parentID].children, a.id)
	return a, nil
}

// Parent returns the name of the area's parent, or false for the root.
func (g *Grid) Parent(name string) (string, bool, error) {
	a, err := g.Get(name)
	if err != nil {
		return "", false, err
	}
	if a.parent < 0 {
		return "", false, nil
	}
	return g.areas[a.parent].Name, true, nil
}

// Children returns the names of the area's children in creation order.
func (g *Grid) Children(name string) ([]string, error) {
	a, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(a.children))
	for i, id := range a.children {
		names[i] = g.areas[id].Name
	}
	return names, nil
}

// Split divides an existing area along the given axis into count
// children named {name}_0 .. {name}_{count-1}.
//
// With nil sizes every child gets an equal share. Explicit sizes must
// have exactly count entries, each in (0,1], and sum to 1.0 within
// splitEpsilon. Children 0..count-2 get floor(extent*size) pixels; the
// last child absorbs the remainder, which keeps the tiling exact.
//
// An area can be split once. Splitting an area that already has
// children fails with ErrAlreadySplit.
func (g *Grid) Split(name string, axis Axis, count int, sizes []float64) ([]*Area, error) {
	a, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	if a.HasChildren() {
		return nil, fmt.Errorf("%w: %q", ErrAlreadySplit, name)
	}
	if axis != AlongWidth && axis != AlongHeight {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidSizes, count)
	}

	if sizes == nil {
		sizes = make([]float64, count)
		for i := range sizes {
			sizes[i] = 1.0 / float64(count)
		}
	} else {
		if len(sizes) != count {
			return nil, fmt.Errorf("%w: want %d sizes, got %d", ErrInvalidSizes, count, len(sizes))
		}
		sum := 0.0
		for _, s := range sizes {
			if s <= 0 || s > 1 {
				return nil, fmt.Errorf("%w: size %v outside (0,1]", ErrInvalidSizes, s)
			}
			sum += s
		}
		if sum < 1-splitEpsilon || sum > 1+splitEpsilon {
			return nil, fmt.Errorf("%w: sizes sum to %v, want 1.0", ErrInvalidSizes, sum)
		}
	}

	extent := a.Rect.W
	if axis == AlongHeight {
		extent = a.Rect.H
	}

	children := make([]*Area, 0, count)
	used := 0
	for i := 0; i < count; i++ {
		span := int(float64(extent) * sizes[i])
		if i == count-1 {
			span = extent - used
		}

		var r Rect
		if axis == AlongWidth {
			r = Rect{X: a.Rect.X + used, Y: a.Rect.Y, W: span, H: a.Rect.H}
		} else {
			r = Rect{X: a.Rect.X, Y: a.Rect.Y + used, W: a.Rect.W, H: span}
		}
		used += span

		child, err := g.AddArea(name+"_"+strconv.Itoa(i), r, name)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// CreateGrid partitions an area into a rows x cols grid by splitting it
// along the height into equal rows, then splitting each row along the
// width into equal columns. The result is row-major; cell (r, c) is
// named {name}_{r}_{c}.
func (g *Grid) CreateGrid(name string, rows, cols int) ([][]*Area, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimensions, rows, cols)
	}

	rowAreas, err := g.Split(name, AlongHeight, rows, nil)
	if err != nil {
		return nil, err
	}

	cells := make([][]*Area, rows)
	for i, row := range rowAreas {
		cells[i], err = g.Split(row.Name, AlongWidth, cols, nil)
		if err != nil {
			return nil, err
		}
	}
	return cells, nil
}
