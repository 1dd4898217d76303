// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import "github.com/SoftbearStudios/terragen/terrain"

func classifyThreePass(h *terrain.Heights, opts *Options) *terrain.Classes {
	classes := terrain.NewClasses(h.Width, h.Height)
	seen := make([]bool, len(h.Values))

	// First pass, columns then rows: label land, and trace each new body of water.
	for x := 0; x < h.Width; x++ {
		for y := 0; y < h.Height; y++ {
			i := h.Index(x, y)
			if classes.Values[i] != terrain.Unassigned {
				continue
			}
			if h.Values[i] > opts.SeaLevel {
				classes.Values[i] = terrain.Land
				continue
			}

			p := terrain.Point{X: x, Y: y}

			// Skip tracing if a neighbour already belongs to a body of water.
			if class := adopt(h, classes, p); class != terrain.Unassigned {
				classes.Values[i] = class
				continue
			}

			region := trace(h, p, opts.SeaLevel, true, seen)
			class := opts.sizeClass(len(region))
			for _, r := range region {
				ri := h.Index(r.X, r.Y)
				classes.Values[ri] = strengthen(classes.Values[ri], class)
			}
		}
	}

	// Second pass, same order: spread ocean into water the first pass labelled a lake.
	for x := 0; x < h.Width; x++ {
		for y := 0; y < h.Height; y++ {
			promote(h, classes, x, y, opts.SeaLevel)
		}
	}

	// Third pass, reversed: spread ocean again and fill whatever is still a lake.
	jitter := newJitter(opts.Seed)
	for x := h.Width - 1; x >= 0; x-- {
		for y := h.Height - 1; y >= 0; y-- {
			if promote(h, classes, x, y, opts.SeaLevel) {
				continue
			}
			i := h.Index(x, y)
			if opts.FillBasins && classes.Values[i] == terrain.Lake && h.Values[i] <= opts.SeaLevel {
				fill(h, i, opts.SeaLevel, jitter)
			}
		}
	}

	return classes
}

// adopt returns the strongest water class among the 8 neighbours of p, in the
// order Ocean, Lake, KeptLake, or Unassigned if there is none. Corners do not
// wrap around any edge.
func adopt(h *terrain.Heights, classes *terrain.Classes, p terrain.Point) terrain.Class {
	var lake, kept bool
	for _, d := range terrain.Surrounding {
		n, ok := cornerNeighbor(h, p, d)
		if !ok {
			continue
		}
		switch classes.At(n.X, n.Y) {
		case terrain.Ocean:
			return terrain.Ocean
		case terrain.Lake:
			lake = true
		case terrain.KeptLake:
			kept = true
		}
	}
	switch {
	case lake:
		return terrain.Lake
	case kept:
		return terrain.KeptLake
	}
	return terrain.Unassigned
}

// promote makes water at (x, y) Ocean if any of its 8 neighbours is Ocean.
// It reports whether the cell is water next to Ocean.
func promote(h *terrain.Heights, classes *terrain.Classes, x, y int, seaLevel float64) bool {
	i := h.Index(x, y)
	if h.Values[i] > seaLevel {
		return false
	}
	if adopt(h, classes, terrain.Point{X: x, Y: y}) != terrain.Ocean {
		return false
	}
	classes.Values[i] = terrain.Ocean
	return true
}

// cornerNeighbor is Heights.Neighbor, except that diagonal offsets past an
// edge have no neighbour.
func cornerNeighbor(h *terrain.Heights, p, d terrain.Point) (terrain.Point, bool) {
	if d.X == 0 || d.Y == 0 {
		return h.Neighbor(p, d)
	}
	n := terrain.Point{X: p.X + d.X, Y: p.Y + d.Y}
	return n, n.X >= 0 && n.X < h.Width && n.Y >= 0 && n.Y < h.Height
}
