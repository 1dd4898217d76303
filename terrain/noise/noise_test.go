// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"
	"sync"
	"testing"
)

var samplePoints = [][3]float64{
	{0.37, 1.91, -2.3},
	{-12.25, 0.5, 3.75},
	{101.1, -57.9, 0.01},
	{0.001, 0.002, 0.003},
}

func TestRidgedMulti_Deterministic(t *testing.T) {
	opts := DefaultRidgedOptions()
	opts.Seed = 42
	a := NewRidgedMulti(opts)
	b := NewRidgedMulti(opts)

	for _, p := range samplePoints {
		for scale := 0; scale < 3; scale++ {
			va := a.Value(p[0], p[1], p[2], scale)
			vb := b.Value(p[0], p[1], p[2], scale)
			if va != vb {
				t.Errorf("Value%v scale %d expected identical results got %v and %v", p, scale, va, vb)
			}
		}
	}
}

func TestRidgedMulti_Seed(t *testing.T) {
	opts := DefaultRidgedOptions()
	a := NewRidgedMulti(opts)
	opts.Seed++
	b := NewRidgedMulti(opts)

	for _, p := range samplePoints {
		if a.Value(p[0], p[1], p[2], 1) == b.Value(p[0], p[1], p[2], 1) {
			t.Errorf("Value%v did not change with seed", p)
		}
	}
}

func TestRidgedMulti_Octaves(t *testing.T) {
	tests := []struct {
		octaves, expected int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{12, 12},
		{MaxOctave, MaxOctave},
		{MaxOctave + 5, MaxOctave},
	}

	for _, test := range tests {
		opts := DefaultRidgedOptions()
		opts.Octaves = test.octaves
		if got := NewRidgedMulti(opts).Options().Octaves; got != test.expected {
			t.Errorf("Octaves %d expected clamp to %d got %d", test.octaves, test.expected, got)
		}
	}

	// Bands past the weight table are dropped instead of overflowing it.
	opts := DefaultRidgedOptions()
	opts.Octaves = MaxOctave
	r := NewRidgedMulti(opts)
	if v := r.Value(1.5, 2.5, 3.5, 100); math.IsNaN(v) || math.IsInf(v, 0) {
		t.Error("expected finite value for a large scale, got", v)
	}
	if r.Value(1.5, 2.5, 3.5, 100) != r.Value(1.5, 2.5, 3.5, 0) {
		t.Error("expected scale beyond MaxOctave to be capped")
	}
}

func TestRidgedMulti_Weights(t *testing.T) {
	opts := DefaultRidgedOptions()
	opts.Lacunarity = 2
	r := NewRidgedMulti(opts)

	for i, expected := range []float64{1, 0.5, 0.25, 0.125} {
		if math.Abs(r.weights[i]-expected) > 1e-12 {
			t.Errorf("weights[%d] expected %f got %f", i, expected, r.weights[i])
		}
	}
}

func TestRidgedMulti_NoBands(t *testing.T) {
	opts := DefaultRidgedOptions()
	opts.Octaves = 1
	r := NewRidgedMulti(opts)

	// octave + scale == 0 sums nothing.
	if v := r.Value(0.3, 0.4, 0.5, -1); v != -1 {
		t.Error("expected -1 with no bands, got", v)
	}
}

func TestSphere(t *testing.T) {
	s := NewSphere(1)

	tests := []struct {
		x, y, z  float64
		expected float64
	}{
		{0, 0, 0, 1},
		{1, 0, 0, 1},
		{3, 4, 0, 1},
		{0, 0, -2, 1},
		{0.5, 0, 0, -1},
		{0, 1.5, 0, -1},
		{0.25, 0, 0, 0},
	}

	for _, test := range tests {
		if got := s.Value(test.x, test.y, test.z, 1); math.Abs(got-test.expected) > 1e-12 {
			t.Errorf("Sphere.Value(%v, %v, %v) expected %v got %v", test.x, test.y, test.z, test.expected, got)
		}
	}

	// Period 1 in scaled distance.
	for d := 0.05; d < 1; d += 0.1 {
		a := s.Value(d, 0, 0, 1)
		b := s.Value(d+1, 0, 0, 1)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("expected period 1 at %f: %f vs %f", d, a, b)
		}
	}

	// Frequency scales distance.
	if got := NewSphere(2).Value(0.5, 0, 0, 1); got != 1 {
		t.Error("expected 1 at scaled distance 1, got", got)
	}
}

func TestInvert(t *testing.T) {
	r := NewRidgedMulti(DefaultRidgedOptions())
	inv := NewInvert(r)
	for _, p := range samplePoints {
		if inv.Value(p[0], p[1], p[2], 2) != -r.Value(p[0], p[1], p[2], 2) {
			t.Errorf("Invert.Value%v expected negation", p)
		}
	}
	if Origin(NewInvert(Const(3))) != -3 {
		t.Error("expected Origin(Invert(3)) == -3")
	}
}

func TestOperators(t *testing.T) {
	two := Const(2)
	five := Const(5)

	tests := []struct {
		name     string
		field    Field
		expected float64
	}{
		{"add", NewAdd(two, five), 7},
		{"add empty", NewAdd(), 0},
		{"multiply", NewMultiply(two, five), 10},
		{"max", NewMax(two, five, Const(-1)), 5},
		{"scale bias", NewScaleBias(five, 2, 0.4), 10.4},
		{"clamp high", NewClamp(five, 0, 1), 1},
		{"clamp low", NewClamp(NewInvert(five), 0, 1), 0},
		{"clamp swapped", NewClamp(five, 3, -3), 3},
	}

	for _, test := range tests {
		if got := Origin(test.field); math.Abs(got-test.expected) > 1e-12 {
			t.Errorf("%s expected %f got %f", test.name, test.expected, got)
		}
	}
}

func TestSharedSource(t *testing.T) {
	shared := NewRidgedMulti(DefaultRidgedOptions())
	zero := NewAdd(shared, NewInvert(shared))
	for _, p := range samplePoints {
		if v := zero.Value(p[0], p[1], p[2], 1); v != 0 {
			t.Errorf("expected shared source to cancel, got %f", v)
		}
	}
}

func TestGradientCoherentNoise3D(t *testing.T) {
	for _, q := range []Quality{Fast, Standard, Best} {
		// Lattice points contribute nothing to themselves.
		if v := GradientCoherentNoise3D(3, 5, 7, 1, q); v != 0 {
			t.Errorf("%s: expected 0 at lattice point, got %f", q, v)
		}

		// Nearby inputs give nearby outputs.
		a := GradientCoherentNoise3D(1.2345, 2.5, 3.75, 1, q)
		b := GradientCoherentNoise3D(1.2346, 2.5, 3.75, 1, q)
		if math.Abs(a-b) > 0.01 {
			t.Errorf("%s: expected continuity, got %f and %f", q, a, b)
		}
	}
}

func TestMakeInt32Range(t *testing.T) {
	if MakeInt32Range(12.5) != 12.5 {
		t.Error("expected small values unchanged")
	}
	for _, n := range []float64{1 << 31, -(1 << 31), 3e12, -7.7e15} {
		if v := MakeInt32Range(n); v < -int32Bound || v > int32Bound {
			t.Errorf("MakeInt32Range(%g) = %g out of range", n, v)
		}
	}
}

func TestPerlin(t *testing.T) {
	opts := DefaultPerlinOptions()
	opts.Seed = 7
	a := NewPerlin(opts)
	b := NewPerlin(opts)
	for _, p := range samplePoints {
		if a.Value(p[0], p[1], p[2], 1) != b.Value(p[0], p[1], p[2], 4) {
			t.Errorf("Perlin.Value%v expected deterministic and scale independent", p)
		}
	}
}

func TestField_Concurrent(t *testing.T) {
	field := NewMax(NewRidgedMulti(DefaultRidgedOptions()), NewScaleBias(NewSphere(3), 0.5, 0))

	expected := make([]float64, len(samplePoints))
	for i, p := range samplePoints {
		expected[i] = field.Value(p[0], p[1], p[2], 1)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range samplePoints {
				if v := field.Value(p[0], p[1], p[2], 1); v != expected[i] {
					t.Errorf("concurrent Value%v expected %f got %f", p, expected[i], v)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkRidgedMulti_Value(b *testing.B) {
	r := NewRidgedMulti(DefaultRidgedOptions())
	acc := 0.0
	for i := 0; i < b.N; i++ {
		acc += r.Value(float64(i)*0.01, 0.5, 0.25, 1)
	}
	_ = acc
}

func TestParseQuality(t *testing.T) {
	for _, q := range []Quality{Fast, Standard, Best} {
		parsed, err := ParseQuality(q.String())
		if err != nil || parsed != q {
			t.Errorf("expected %s, got %s (%v)", q, parsed, err)
		}
	}
	if q, err := ParseQuality(""); err != nil || q != Standard {
		t.Error("expected empty string to select standard")
	}
	if _, err := ParseQuality("ultra"); err == nil {
		t.Error("expected error")
	}
}
