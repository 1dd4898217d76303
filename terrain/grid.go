// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Region is one connected set of cells in the order they were discovered.
type Region []Point

// Orthogonal neighbour offsets: N, E, S, W.
var Orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Surrounding is Orthogonal followed by the four corners.
var Surrounding = [8]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Heights is a heightmap stored row major.
// It is owned by the caller and mutated in place by normalization and basin filling.
type Heights struct {
	Width    int
	Height   int
	Topology Topology
	Values   []float64
}

// NewHeights allocates a zeroed width x height heightmap.
func NewHeights(width, height int, topology Topology) *Heights {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Heights{
		Width:    width,
		Height:   height,
		Topology: topology,
		Values:   make([]float64, width*height),
	}
}

// HeightsFrom copies columns[x][y] into a new heightmap.
func HeightsFrom(columns [][]float64, topology Topology) (*Heights, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidDimensions)
	}
	h := NewHeights(len(columns), len(columns[0]), topology)
	for x, column := range columns {
		if len(column) != h.Height {
			return nil, fmt.Errorf("%w: column %d has %d cells, want %d", ErrInvalidDimensions, x, len(column), h.Height)
		}
		for y, v := range column {
			h.Values[h.Index(x, y)] = v
		}
	}
	return h, h.Validate()
}

// Validate checks the grid is at least 2x2 and fully backed.
func (h *Heights) Validate() error {
	return validate(h.Width, h.Height, len(h.Values))
}

// Index converts (x, y) to an index into Values.
func (h *Heights) Index(x, y int) int {
	return x + y*h.Width
}

// Point converts an index into Values back to (x, y).
func (h *Heights) Point(i int) Point {
	return Point{X: i % h.Width, Y: i / h.Width}
}

func (h *Heights) At(x, y int) float64 {
	return h.Values[h.Index(x, y)]
}

func (h *Heights) Set(x, y int, v float64) {
	h.Values[h.Index(x, y)] = v
}

// Neighbor resolves the cell at offset d from p using the grid's topology.
func (h *Heights) Neighbor(p, d Point) (Point, bool) {
	x, y, ok := h.Topology.Wrap(p.X+d.X, p.Y+d.Y, h.Width, h.Height)
	return Point{X: x, Y: y}, ok
}

// Clone returns a deep copy.
func (h *Heights) Clone() *Heights {
	c := *h
	c.Values = append([]float64(nil), h.Values...)
	return &c
}

// Range returns the minimum and maximum height.
func (h *Heights) Range() (min, max float64) {
	if len(h.Values) == 0 {
		return
	}
	min, max = h.Values[0], h.Values[0]
	for _, v := range h.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

// Class is the land/water classification of one cell.
type Class uint8

const (
	Unassigned Class = iota
	Land
	// Lake is a basin small enough to be filled.
	Lake
	// Ocean is any water connected to a large waterbody.
	Ocean
	// KeptLake is a small basin deliberately left as water.
	KeptLake
)

func (c Class) String() string {
	switch c {
	case Unassigned:
		return "unassigned"
	case Land:
		return "land"
	case Lake:
		return "lake"
	case Ocean:
		return "ocean"
	case KeptLake:
		return "kept lake"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Water reports whether the class is any kind of water.
func (c Class) Water() bool {
	return c == Lake || c == Ocean || c == KeptLake
}

// Classes is a classification grid with the same layout as Heights.
type Classes struct {
	Width  int
	Height int
	Values []Class
}

// NewClasses allocates an unassigned grid matching h.
func NewClasses(width, height int) *Classes {
	return &Classes{
		Width:  width,
		Height: height,
		Values: make([]Class, width*height),
	}
}

func (c *Classes) Index(x, y int) int {
	return x + y*c.Width
}

func (c *Classes) At(x, y int) Class {
	return c.Values[c.Index(x, y)]
}

func (c *Classes) Set(x, y int, class Class) {
	c.Values[c.Index(x, y)] = class
}

func validate(width, height, n int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("%w: %dx%d is smaller than 2x2", ErrInvalidDimensions, width, height)
	}
	if n != width*height {
		return fmt.Errorf("%w: %d values for %dx%d", ErrInvalidDimensions, n, width, height)
	}
	return nil
}
