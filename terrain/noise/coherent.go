// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

// Lattice hash constants.
const (
	xNoiseGen     = 1619
	yNoiseGen     = 31337
	zNoiseGen     = 6971
	seedNoiseGen  = 1013
	shiftNoiseGen = 8
)

// int32Bound is where MakeInt32Range starts folding.
const int32Bound = 1073741824.0

// gradients holds 256 unit vectors spread evenly over a sphere.
var gradients = func() (table [256][3]float64) {
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range table {
		y := 1 - (float64(i)+0.5)*2/float64(len(table))
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		table[i] = [3]float64{math.Cos(theta) * r, y, math.Sin(theta) * r}
	}
	return
}()

// MakeInt32Range folds n into (-2^30, 2^30) so it can be floored into an int32
// lattice coordinate without overflowing.
func MakeInt32Range(n float64) float64 {
	if n >= int32Bound {
		return 2*math.Mod(n, int32Bound) - int32Bound
	}
	if n <= -int32Bound {
		return 2*math.Mod(n, int32Bound) + int32Bound
	}
	return n
}

// GradientCoherentNoise3D returns seeded gradient noise at (x, y, z), roughly in [-1, 1].
// Coordinates must already be inside the range produced by MakeInt32Range.
func GradientCoherentNoise3D(x, y, z float64, seed int32, quality Quality) float64 {
	x0 := floorInt32(x)
	y0 := floorInt32(y)
	z0 := floorInt32(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	xs := interpolant(x-float64(x0), quality)
	ys := interpolant(y-float64(y0), quality)
	zs := interpolant(z-float64(z0), quality)

	n0 := GradientNoise3D(x, y, z, x0, y0, z0, seed)
	n1 := GradientNoise3D(x, y, z, x1, y0, z0, seed)
	ix0 := lerp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z0, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z0, seed)
	ix1 := lerp(n0, n1, xs)
	iy0 := lerp(ix0, ix1, ys)

	n0 = GradientNoise3D(x, y, z, x0, y0, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y0, z1, seed)
	ix0 = lerp(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z1, seed)
	ix1 = lerp(n0, n1, xs)
	iy1 := lerp(ix0, ix1, ys)

	return lerp(iy0, iy1, zs)
}

// GradientNoise3D is the contribution of lattice point (ix, iy, iz) to the
// noise value at (fx, fy, fz).
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	index := uint32(xNoiseGen)*uint32(ix) +
		uint32(yNoiseGen)*uint32(iy) +
		uint32(zNoiseGen)*uint32(iz) +
		uint32(seedNoiseGen)*uint32(seed)
	index ^= index >> shiftNoiseGen
	g := &gradients[index&0xff]

	dx := fx - float64(ix)
	dy := fy - float64(iy)
	dz := fz - float64(iz)

	return (g[0]*dx + g[1]*dy + g[2]*dz) * 2.12
}

func floorInt32(f float64) int32 {
	if f > 0 {
		return int32(f)
	}
	return int32(f) - 1
}

func interpolant(t float64, quality Quality) float64 {
	switch quality {
	case Fast:
		return t
	case Best:
		return sCurve5(t)
	default:
		return sCurve3(t)
	}
}

func sCurve3(t float64) float64 {
	return t * t * (3 - 2*t)
}

func sCurve5(t float64) float64 {
	t3 := t * t * t
	t4 := t3 * t
	t5 := t4 * t
	return 6*t5 - 15*t4 + 10*t3
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
