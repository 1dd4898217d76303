// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import "github.com/SoftbearStudios/terragen/terrain"

// DangleOffset is how far Normalize moves a dangle past sea level.
const DangleOffset = 0.05

// Normalize raises water cells with fewer than two water neighbours to just
// above seaLevel, and sinks land cells with fewer than two land neighbours to
// just below it. Only the four orthogonal neighbours count; cells past the
// north/south edge of a non-wrapping map count as land.
//
// Every decision reads the heights as they were before the call, so the
// result does not depend on sweep order. Flipping a dangle can create a new
// one next to it; call again (or use NormalizeStable) to clean those up.
// It returns the number of cells changed.
func Normalize(h *terrain.Heights, seaLevel float64) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	original := append([]float64(nil), h.Values...)
	changed := 0

	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			p := terrain.Point{X: x, Y: y}
			water := waterNeighbors(h, original, p, seaLevel)
			land := len(terrain.Orthogonal) - water

			i := h.Index(x, y)
			if original[i] <= seaLevel {
				if water < 2 {
					h.Values[i] = seaLevel + DangleOffset
					changed++
				}
			} else if land < 2 {
				h.Values[i] = seaLevel - DangleOffset
				changed++
			}
		}
	}

	return changed, nil
}

// NormalizeStable calls Normalize until it changes nothing or maxPasses have
// run, and returns the number of passes. Some patterns (such as a checkerboard)
// never settle, which is why the number of passes is bounded.
func NormalizeStable(h *terrain.Heights, seaLevel float64, maxPasses int) (int, error) {
	passes := 0
	for passes < maxPasses {
		changed, err := Normalize(h, seaLevel)
		if err != nil {
			return passes, err
		}
		passes++
		if changed == 0 {
			break
		}
	}
	return passes, nil
}

// Dangles counts the cells Normalize would move: cells that disagree with at
// least three of their four neighbours about being water.
func Dangles(h *terrain.Heights, seaLevel float64) int {
	count := 0
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			water := waterNeighbors(h, h.Values, terrain.Point{X: x, Y: y}, seaLevel)
			if h.At(x, y) <= seaLevel {
				if water < 2 {
					count++
				}
			} else if water > 2 {
				count++
			}
		}
	}
	return count
}

func waterNeighbors(h *terrain.Heights, values []float64, p terrain.Point, seaLevel float64) int {
	water := 0
	for _, d := range terrain.Orthogonal {
		n, ok := h.Neighbor(p, d)
		if !ok {
			// Off the map is land.
			continue
		}
		if values[h.Index(n.X, n.Y)] <= seaLevel {
			water++
		}
	}
	return water
}
