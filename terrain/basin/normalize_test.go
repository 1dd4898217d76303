// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import (
	"testing"

	"github.com/SoftbearStudios/terragen/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coast is land on the west half and water on the east half, with no dangles.
func coast(t *testing.T) *terrain.Heights {
	return parseGrid(t, terrain.Cylinder,
		"#####.....",
		"#####.....",
		"#####.....",
		"#####.....",
		"#####.....",
		"#####.....",
		"#####.....",
		"#####.....",
	)
}

func TestNormalize_WaterDangle(t *testing.T) {
	h := parseGrid(t, terrain.Cylinder,
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)

	changed, err := Normalize(h, testSeaLevel)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, testSeaLevel+DangleOffset, h.At(2, 2))
}

func TestNormalize_LandDangle(t *testing.T) {
	h := parseGrid(t, terrain.Cylinder,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)

	changed, err := Normalize(h, testSeaLevel)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, testSeaLevel-DangleOffset, h.At(2, 2))
	// Off the north and south edges counts as land, which leaves edge water alone.
	assert.Equal(t, waterHeight, h.At(0, 0))
	assert.Equal(t, waterHeight, h.At(4, 4))
}

func TestNormalize_EdgeSentinel(t *testing.T) {
	h := parseGrid(t, terrain.Cylinder,
		"#.###",
		"#####",
		"#####",
	)

	// Water on the north edge has land on three sides plus the edge.
	changed, err := Normalize(h, testSeaLevel)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Greater(t, h.At(1, 0), testSeaLevel)
}

func TestNormalize_RemovesDangles(t *testing.T) {
	h := coast(t)
	require.Equal(t, 0, Dangles(h, testSeaLevel))

	h.Set(2, 3, waterHeight)
	h.Set(7, 4, landHeight)
	require.Equal(t, 2, Dangles(h, testSeaLevel))

	passes, err := NormalizeStable(h, testSeaLevel, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, passes)
	assert.Equal(t, 0, Dangles(h, testSeaLevel))
	assert.Greater(t, h.At(2, 3), testSeaLevel)
	assert.LessOrEqual(t, h.At(7, 4), testSeaLevel)
}

func TestNormalize_OrderIndependent(t *testing.T) {
	for seed := int64(0); seed < 4; seed++ {
		h := randomGrid(16, 12, seed)
		m := mirrorX(h)

		_, err := Normalize(h, testSeaLevel)
		require.NoError(t, err)
		_, err = Normalize(m, testSeaLevel)
		require.NoError(t, err)

		assert.Equal(t, mirrorX(h).Values, m.Values, "seed %d", seed)
	}
}

func TestNormalize_DanglesDecrease(t *testing.T) {
	h := coast(t)
	for _, p := range []terrain.Point{{X: 1, Y: 1}, {X: 3, Y: 5}, {X: 6, Y: 2}, {X: 8, Y: 6}, {X: 2, Y: 7}} {
		if h.At(p.X, p.Y) > testSeaLevel {
			h.Set(p.X, p.Y, waterHeight)
		} else {
			h.Set(p.X, p.Y, landHeight)
		}
	}

	previous := Dangles(h, testSeaLevel)
	require.Equal(t, 5, previous)
	for pass := 0; previous > 0; pass++ {
		require.Less(t, pass, 4, "dangles did not clear")
		_, err := Normalize(h, testSeaLevel)
		require.NoError(t, err)
		current := Dangles(h, testSeaLevel)
		require.Less(t, current, previous)
		previous = current
	}
}

func TestNormalizeStable_Checkerboard(t *testing.T) {
	h := parseGrid(t, terrain.Cylinder,
		".#.#",
		"#.#.",
		".#.#",
		"#.#.",
	)

	// Every cell flips every pass, so it never settles.
	passes, err := NormalizeStable(h, testSeaLevel, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, passes)
}

func TestNormalize_Errors(t *testing.T) {
	_, err := Normalize(terrain.NewHeights(1, 8, terrain.Cylinder), testSeaLevel)
	assert.ErrorIs(t, err, terrain.ErrInvalidDimensions)
}

func TestSummarize(t *testing.T) {
	classes := terrain.NewClasses(3, 2)
	copy(classes.Values, []terrain.Class{terrain.Land, terrain.Land, terrain.Lake, terrain.Ocean, terrain.KeptLake, terrain.Unassigned})

	s := Summarize(classes)
	assert.Equal(t, Summary{Unassigned: 1, Land: 2, Lake: 1, Ocean: 1, KeptLake: 1}, s)
	assert.Equal(t, 2, s.Water())
}
