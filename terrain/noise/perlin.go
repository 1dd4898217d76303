// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/aquilax/go-perlin"

// PerlinOptions parameterizes a Perlin generator.
type PerlinOptions struct {
	Frequency float64
	Alpha     float64 // weight falloff between octaves
	Beta      float64 // frequency multiplier between octaves
	Octaves   int32
	Seed      int64
}

// DefaultPerlinOptions returns four octaves with alpha 1.5 and beta 2.
func DefaultPerlinOptions() PerlinOptions {
	return PerlinOptions{
		Frequency: 1,
		Alpha:     1.5,
		Beta:      2,
		Octaves:   4,
	}
}

// Perlin is classic Perlin noise, useful as a smooth continental base.
type Perlin struct {
	noise     *perlin.Perlin
	frequency float64
}

func NewPerlin(opts PerlinOptions) *Perlin {
	return &Perlin{
		noise:     perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed),
		frequency: opts.Frequency,
	}
}

// Value implements Field.Value. The octave count is fixed at construction, so
// scale is ignored.
func (p *Perlin) Value(x, y, z float64, scale int) float64 {
	return p.noise.Noise3D(x*p.frequency, y*p.frequency, z*p.frequency)
}
