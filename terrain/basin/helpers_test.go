// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import (
	"math/rand"
	"testing"

	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/stretchr/testify/require"
)

const (
	testSeaLevel = 0.5
	waterHeight  = 0.0
	landHeight   = 1.0
)

// parseGrid builds a heightmap from rows of '.' (water) and '#' (land).
func parseGrid(t *testing.T, topology terrain.Topology, rows ...string) *terrain.Heights {
	t.Helper()
	require.NotEmpty(t, rows)

	h := terrain.NewHeights(len(rows[0]), len(rows), topology)
	for y, row := range rows {
		require.Len(t, row, h.Width, "row %d", y)
		for x, c := range row {
			switch c {
			case '.':
				h.Set(x, y, waterHeight)
			case '#':
				h.Set(x, y, landHeight)
			default:
				t.Fatalf("unexpected %q at (%d, %d)", c, x, y)
			}
		}
	}
	return h
}

func randomGrid(width, height int, seed int64) *terrain.Heights {
	r := rand.New(rand.NewSource(seed))
	h := terrain.NewHeights(width, height, terrain.Cylinder)
	for i := range h.Values {
		h.Values[i] = r.Float64()
	}
	return h
}

func mirrorX(h *terrain.Heights) *terrain.Heights {
	m := h.Clone()
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			m.Set(h.Width-1-x, y, h.At(x, y))
		}
	}
	return m
}

var methods = []Method{UnionFind, ThreePass}
