// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise composes coherent noise generators and operators into a Field
// graph that can be sampled into a heightmap.
//
// Every node is immutable once constructed. Operators receive their inputs in
// their constructor, so a graph can share nodes but can never contain a cycle,
// and any Field may be evaluated from multiple goroutines.
package noise

import "fmt"

// Field is a scalar function of a 3D coordinate and an integer scale term.
// Fractal generators add scale to their octave count; other nodes ignore it
// or pass it through.
type Field interface {
	Value(x, y, z float64, scale int) float64
}

// Origin evaluates f at the origin with a scale of 1.
func Origin(f Field) float64 {
	return f.Value(0, 0, 0, 1)
}

// Quality selects how coherent noise interpolates between lattice points.
type Quality uint8

const (
	// Fast interpolates linearly.
	Fast Quality = iota
	// Standard uses a cubic s-curve.
	Standard
	// Best uses a quintic s-curve, continuous in the second derivative.
	Best
)

func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Standard:
		return "standard"
	case Best:
		return "best"
	default:
		return "unknown"
	}
}

// ParseQuality is the inverse of Quality.String. The empty string selects
// Standard.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "fast":
		return Fast, nil
	case "", "standard":
		return Standard, nil
	case "best":
		return Best, nil
	}
	return 0, fmt.Errorf("noise: unknown quality %q", s)
}
