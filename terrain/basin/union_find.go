// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import "github.com/SoftbearStudios/terragen/terrain"

// Offsets that visit every neighbour pair once when applied to every cell.
var (
	forwardOrthogonal = [...]terrain.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	forwardDiagonal   = [...]terrain.Point{{X: 1, Y: 1}, {X: -1, Y: 1}}
)

func classifyUnionFind(h *terrain.Heights, opts *Options) *terrain.Classes {
	classes := terrain.NewClasses(h.Width, h.Height)
	water := func(p terrain.Point) bool {
		return h.At(p.X, p.Y) <= opts.SeaLevel
	}

	// Bodies of water are 4-connected; contact groups also join diagonal neighbours.
	bodies := newDisjointSet(len(h.Values))
	contacts := newDisjointSet(len(h.Values))

	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			p := terrain.Point{X: x, Y: y}
			if !water(p) {
				classes.Values[h.Index(x, y)] = terrain.Land
				continue
			}
			i := h.Index(x, y)
			for _, d := range forwardOrthogonal {
				if n, ok := h.Neighbor(p, d); ok && water(n) {
					j := h.Index(n.X, n.Y)
					bodies.union(i, j)
					contacts.union(i, j)
				}
			}
			for _, d := range forwardDiagonal {
				if n, ok := h.Neighbor(p, d); ok && water(n) {
					contacts.union(i, h.Index(n.X, n.Y))
				}
			}
		}
	}

	// Any ocean body makes its whole contact group ocean.
	ocean := make(map[int32]bool)
	for i, class := range classes.Values {
		if class == terrain.Land {
			continue
		}
		if opts.sizeClass(bodies.sizeOf(i)) == terrain.Ocean {
			ocean[contacts.find(int32(i))] = true
		}
	}

	for i, class := range classes.Values {
		if class == terrain.Land {
			continue
		}
		if ocean[contacts.find(int32(i))] {
			classes.Values[i] = terrain.Ocean
		} else {
			classes.Values[i] = opts.sizeClass(bodies.sizeOf(i))
		}
	}

	// Fill in the same order as the three-pass method so both draw the same jitter.
	if opts.FillBasins {
		jitter := newJitter(opts.Seed)
		for x := h.Width - 1; x >= 0; x-- {
			for y := h.Height - 1; y >= 0; y-- {
				i := h.Index(x, y)
				if classes.Values[i] == terrain.Lake {
					fill(h, i, opts.SeaLevel, jitter)
				}
			}
		}
	}

	return classes
}

// disjointSet is a union-find over cell indices with path halving and union by size.
type disjointSet struct {
	parent []int32
	size   []int32
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int32, n),
		size:   make([]int32, n),
	}
	for i := range ds.parent {
		ds.parent[i] = int32(i)
		ds.size[i] = 1
	}
	return ds
}

func (ds *disjointSet) find(i int32) int32 {
	for ds.parent[i] != i {
		ds.parent[i] = ds.parent[ds.parent[i]]
		i = ds.parent[i]
	}
	return i
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(int32(a)), ds.find(int32(b))
	if ra == rb {
		return
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
}

func (ds *disjointSet) sizeOf(i int) int {
	return int(ds.size[ds.find(int32(i))])
}
