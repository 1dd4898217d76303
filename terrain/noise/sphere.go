// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

// Sphere outputs concentric shells around the origin: 1 at every integer
// distance (after frequency scaling), falling to -1 halfway between.
type Sphere struct {
	frequency float64
}

func NewSphere(frequency float64) *Sphere {
	return &Sphere{frequency: frequency}
}

func (s *Sphere) Frequency() float64 {
	return s.frequency
}

// Value implements Field.Value. scale is ignored.
func (s *Sphere) Value(x, y, z float64, scale int) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency

	d := math.Sqrt(x*x + y*y + z*z)
	small := d - math.Floor(d)
	nearest := math.Min(small, 1-small)

	return 1 - nearest*4
}
