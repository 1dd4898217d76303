// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import "github.com/SoftbearStudios/terragen/terrain"

// Trace returns the 4-connected region containing start whose cells are below
// threshold (or equal to it, if inclusive). Edges wrap according to the
// heightmap's topology. The region is in breadth-first order and holds each
// cell once; it is empty if start itself does not qualify.
func Trace(h *terrain.Heights, start terrain.Point, threshold float64, inclusive bool) terrain.Region {
	return trace(h, start, threshold, inclusive, make([]bool, len(h.Values)))
}

// trace is Trace with a caller supplied visited set, so repeated traces over
// one grid do not reallocate it.
func trace(h *terrain.Heights, start terrain.Point, threshold float64, inclusive bool, seen []bool) terrain.Region {
	below := func(v float64) bool {
		if inclusive {
			return v <= threshold
		}
		return v < threshold
	}

	i0 := h.Index(start.X, start.Y)
	if seen[i0] || !below(h.Values[i0]) {
		return nil
	}

	seen[i0] = true
	region := terrain.Region{start}

	for qi := 0; qi < len(region); qi++ {
		p := region[qi]
		for _, d := range terrain.Orthogonal {
			n, ok := h.Neighbor(p, d)
			if !ok {
				continue
			}
			ni := h.Index(n.X, n.Y)
			if seen[ni] || !below(h.Values[ni]) {
				continue
			}
			seen[ni] = true
			region = append(region, n)
		}
	}
	return region
}
