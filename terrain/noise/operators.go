// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

// Const outputs the same value everywhere.
type Const float64

func (c Const) Value(x, y, z float64, scale int) float64 {
	return float64(c)
}

// Invert negates its source.
type Invert struct {
	source Field
}

func NewInvert(source Field) *Invert {
	return &Invert{source: source}
}

func (i *Invert) Value(x, y, z float64, scale int) float64 {
	return -i.source.Value(x, y, z, scale)
}

// Add sums its sources.
type Add struct {
	sources []Field
}

func NewAdd(sources ...Field) *Add {
	return &Add{sources: append([]Field(nil), sources...)}
}

func (a *Add) Value(x, y, z float64, scale int) float64 {
	sum := 0.0
	for _, s := range a.sources {
		sum += s.Value(x, y, z, scale)
	}
	return sum
}

// Multiply takes the product of its sources.
type Multiply struct {
	sources []Field
}

func NewMultiply(sources ...Field) *Multiply {
	return &Multiply{sources: append([]Field(nil), sources...)}
}

func (m *Multiply) Value(x, y, z float64, scale int) float64 {
	product := 1.0
	for _, s := range m.sources {
		product *= s.Value(x, y, z, scale)
	}
	return product
}

// Max takes the largest value of its sources, or -Inf if it has none.
type Max struct {
	sources []Field
}

func NewMax(sources ...Field) *Max {
	return &Max{sources: append([]Field(nil), sources...)}
}

func (m *Max) Value(x, y, z float64, scale int) float64 {
	max := math.Inf(-1)
	for _, s := range m.sources {
		max = math.Max(max, s.Value(x, y, z, scale))
	}
	return max
}

// ScaleBias outputs source*scale + bias.
type ScaleBias struct {
	source      Field
	scale, bias float64
}

func NewScaleBias(source Field, scale, bias float64) *ScaleBias {
	return &ScaleBias{source: source, scale: scale, bias: bias}
}

func (s *ScaleBias) Value(x, y, z float64, scale int) float64 {
	return s.source.Value(x, y, z, scale)*s.scale + s.bias
}

// Clamp limits its source to [lower, upper].
type Clamp struct {
	source       Field
	lower, upper float64
}

// NewClamp swaps lower and upper if they are out of order.
func NewClamp(source Field, lower, upper float64) *Clamp {
	if lower > upper {
		lower, upper = upper, lower
	}
	return &Clamp{source: source, lower: lower, upper: upper}
}

func (c *Clamp) Value(x, y, z float64, scale int) float64 {
	return math.Min(math.Max(c.source.Value(x, y, z, scale), c.lower), c.upper)
}
