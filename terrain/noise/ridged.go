// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

// MaxOctave bounds the octave count of fractal generators.
const MaxOctave = 30

const (
	ridgedOffset = 1.0
	ridgedGain   = 2.0
)

// RidgedOptions parameterizes a RidgedMulti.
type RidgedOptions struct {
	Frequency  float64
	Lacunarity float64
	Octaves    int
	Seed       int
	Quality    Quality
}

// DefaultRidgedOptions returns the parameters used when none are given.
func DefaultRidgedOptions() RidgedOptions {
	return RidgedOptions{
		Frequency:  1,
		Lacunarity: 2,
		Octaves:    6,
		Seed:       0,
		Quality:    Standard,
	}
}

// RidgedMulti is ridged multifractal noise. Each band folds gradient noise
// around zero and weights it by the previous band, which produces sharp
// ridge lines suitable for mountain ranges.
type RidgedMulti struct {
	opts    RidgedOptions
	weights [MaxOctave]float64
}

// NewRidgedMulti creates a RidgedMulti. Octaves is clamped to [1, MaxOctave].
func NewRidgedMulti(opts RidgedOptions) *RidgedMulti {
	opts.Octaves = clampInt(opts.Octaves, 1, MaxOctave)

	r := &RidgedMulti{opts: opts}
	f := 1.0
	for i := range r.weights {
		r.weights[i] = math.Pow(f, -1)
		f *= opts.Lacunarity
	}
	return r
}

// Options returns the (clamped) parameters r was built with.
func (r *RidgedMulti) Options() RidgedOptions {
	return r.opts
}

// Value implements Field.Value. scale adds extra bands, up to MaxOctave in total.
func (r *RidgedMulti) Value(x, y, z float64, scale int) float64 {
	x *= r.opts.Frequency
	y *= r.opts.Frequency
	z *= r.opts.Frequency

	value := 0.0
	weight := 1.0

	bands := clampInt(r.opts.Octaves+scale, 0, MaxOctave)
	for i := 0; i < bands; i++ {
		nx := MakeInt32Range(x)
		ny := MakeInt32Range(y)
		nz := MakeInt32Range(z)

		seed := int32((r.opts.Seed + i) & 0x7fffffff)
		signal := GradientCoherentNoise3D(nx, ny, nz, seed, r.opts.Quality)

		signal = ridgedOffset - math.Abs(signal)
		signal *= signal
		signal *= weight

		weight = clamp01(signal * ridgedGain)

		value += signal * r.weights[i]

		x *= r.opts.Lacunarity
		y *= r.opts.Lacunarity
		z *= r.opts.Lacunarity
	}

	return value*1.25 - 1.0
}
