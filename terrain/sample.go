// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// Source is a scalar field that can be sampled into a heightmap.
// Implementations must be safe for concurrent reads.
type Source interface {
	Value(x, y, z float64, scale int) float64
}

// SampleOptions controls how a Source is laid over a grid.
type SampleOptions struct {
	Width, Height int
	Topology      Topology
	// Extent is the width of the map in source space.
	Extent float64
	// OffsetX, OffsetY and Z translate the map in source space.
	OffsetX, OffsetY, Z float64
	// Scale is passed through to the source.
	Scale int
	// Workers is the number of goroutines sampling rows, 0 means GOMAXPROCS.
	Workers int
	// Normalize rescales the sampled values to [0, 1].
	Normalize bool
}

// DefaultSampleOptions returns options for a width x height cylindrical map.
func DefaultSampleOptions(width, height int) SampleOptions {
	return SampleOptions{
		Width:    width,
		Height:   height,
		Topology: Cylinder,
		Extent:   1,
		Scale:    1,
	}
}

// Sample materializes src over the grid described by opts.
// When x wraps, the x axis is bent around a cylinder of circumference Extent so
// the east-west seam is continuous.
func Sample(ctx context.Context, src Source, opts SampleOptions) (*Heights, error) {
	if err := validate(opts.Width, opts.Height, opts.Width*opts.Height); err != nil {
		return nil, err
	}
	if opts.Extent == 0 {
		opts.Extent = 1
	}

	h := NewHeights(opts.Width, opts.Height, opts.Topology)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Height {
		workers = opts.Height
	}

	rows := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				sampleRow(src, h, &opts, y)
			}
		}()
	}

	var err error
feed:
	for y := 0; y < opts.Height; y++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	if opts.Normalize {
		Normalize01(h)
	}
	return h, nil
}

func sampleRow(src Source, h *Heights, opts *SampleOptions, y int) {
	// Keep cells square in source space.
	cell := opts.Extent / float64(opts.Width)
	sy := float64(y)*cell + opts.OffsetY
	radius := opts.Extent / (2 * math.Pi)

	for x := 0; x < opts.Width; x++ {
		var sx, sz float64
		if opts.Topology.WrapsX() {
			angle := 2 * math.Pi * float64(x) / float64(opts.Width)
			sx = math.Cos(angle)*radius + opts.OffsetX
			sz = math.Sin(angle)*radius + opts.Z
		} else {
			sx = float64(x)*cell + opts.OffsetX
			sz = opts.Z
		}
		h.Values[h.Index(x, y)] = src.Value(sx, sy, sz, opts.Scale)
	}
}

// Normalize01 linearly rescales h to [0, 1]. A flat map becomes all zeros.
func Normalize01(h *Heights) {
	min, max := h.Range()
	span := max - min
	for i, v := range h.Values {
		if span == 0 {
			h.Values[i] = 0
			continue
		}
		h.Values[i] = (v - min) / span
	}
}
