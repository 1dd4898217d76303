// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// Topology decides how neighbour lookups behave at the edges of a grid.
type Topology uint8

const (
	// Cylinder wraps east-west and treats the north and south edges as the end of the map.
	Cylinder Topology = iota
	// Rectangle never wraps.
	Rectangle
	// Torus wraps on both axes.
	Torus
)

// WrapsX reports whether x coordinates wrap around.
func (t Topology) WrapsX() bool {
	return t == Cylinder || t == Torus
}

// WrapsY reports whether y coordinates wrap around.
func (t Topology) WrapsY() bool {
	return t == Torus
}

// Wrap resolves (x, y) on a width x height grid. ok is false if the
// coordinate lies off the map.
func (t Topology) Wrap(x, y, width, height int) (wx, wy int, ok bool) {
	if x < 0 || x >= width {
		if !t.WrapsX() {
			return 0, 0, false
		}
		x = mod(x, width)
	}
	if y < 0 || y >= height {
		if !t.WrapsY() {
			return 0, 0, false
		}
		y = mod(y, height)
	}
	return x, y, true
}

func (t Topology) String() string {
	switch t {
	case Cylinder:
		return "cylinder"
	case Rectangle:
		return "rectangle"
	case Torus:
		return "torus"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// ParseTopology is the inverse of Topology.String.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "", "cylinder":
		return Cylinder, nil
	case "rectangle":
		return Rectangle, nil
	case "torus":
		return Torus, nil
	}
	return 0, fmt.Errorf("terrain: unknown topology %q", s)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
