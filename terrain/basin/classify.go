// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package basin

import (
	"fmt"
	"math/rand/v2"

	"github.com/SoftbearStudios/terragen/terrain"
)

// FillJitter is the width of the band above sea level that filled basins are
// raised into.
const FillJitter = 0.01

// Method selects the classification algorithm.
type Method uint8

const (
	// UnionFind merges connected water with a disjoint-set and decides each
	// body's class once, independent of scan order.
	UnionFind Method = iota
	// ThreePass traces water bodies during a raster scan and then runs two
	// corrective sweeps. Bodies reached diagonally from an already classified
	// lake before they are traced inherit that lake's class, so its result can
	// depend on scan order.
	ThreePass
)

func (m Method) String() string {
	switch m {
	case UnionFind:
		return "union-find"
	case ThreePass:
		return "three-pass"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "union-find":
		return UnionFind, nil
	case "three-pass":
		return ThreePass, nil
	}
	return 0, fmt.Errorf("basin: unknown method %q", s)
}

// Options configures Classify.
type Options struct {
	// Tolerance is the largest body of water, in cells, that counts as a lake.
	Tolerance int
	// SeaLevel separates water (<= SeaLevel) from land.
	SeaLevel float64
	// FillBasins raises lakes to just above sea level.
	FillBasins bool
	// KeepSmallLakes leaves lakes smaller than Tolerance/4 as water.
	KeepSmallLakes bool
	// Seed drives the fill jitter only.
	Seed   int64
	Method Method
}

// DefaultOptions returns options for heightmaps normalized to [0, 1].
func DefaultOptions() Options {
	return Options{
		Tolerance:      1024,
		SeaLevel:       0.5,
		FillBasins:     true,
		KeepSmallLakes: true,
		Seed:           1,
		Method:         UnionFind,
	}
}

// Classify labels every cell of h as Land, Lake, Ocean or KeptLake.
//
// A body of 4-connected water larger than Tolerance cells is Ocean, anything
// else is a Lake, or a KeptLake if KeepSmallLakes is set and it is smaller than
// Tolerance/4. Water touching Ocean, including diagonally, becomes Ocean too.
// If FillBasins is set, every Lake cell is raised to SeaLevel plus up to
// FillJitter; the Lake class is kept so callers can still find the basins.
func Classify(h *terrain.Heights, opts Options) (*terrain.Classes, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: got %d", terrain.ErrInvalidTolerance, opts.Tolerance)
	}

	switch opts.Method {
	case UnionFind:
		return classifyUnionFind(h, &opts), nil
	case ThreePass:
		return classifyThreePass(h, &opts), nil
	default:
		return nil, fmt.Errorf("basin: unknown method %s", opts.Method)
	}
}

// sizeClass classifies a body of water by its size.
func (opts *Options) sizeClass(size int) terrain.Class {
	if opts.KeepSmallLakes && size < opts.Tolerance/4 {
		return terrain.KeptLake
	}
	if size <= opts.Tolerance {
		return terrain.Lake
	}
	return terrain.Ocean
}

// strengthen applies the only transitions allowed after a cell is first
// assigned: lakes may become ocean, nothing else changes.
func strengthen(current, next terrain.Class) terrain.Class {
	if current == terrain.Unassigned || next == terrain.Ocean {
		return next
	}
	return current
}

func newJitter(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// fill raises a lake cell to just above sea level.
func fill(h *terrain.Heights, i int, seaLevel float64, jitter *rand.Rand) {
	h.Values[i] = seaLevel + jitter.Float64()*FillJitter
}
