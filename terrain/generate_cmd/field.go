// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"github.com/SoftbearStudios/terragen/terrain/noise"
)

// newField builds the default terrain: perlin land shaped by a low frequency
// zone, ridges on top, latitude bands from concentric spheres, and an open
// water floor underneath. c must be valid.
func newField(c *NoiseConfig, seed int64) noise.Field {
	quality, _ := noise.ParseQuality(c.Quality)

	perlinLayer := func(layer LayerConfig, offset int64) noise.Field {
		return noise.NewPerlin(noise.PerlinOptions{
			Frequency: layer.Frequency,
			Alpha:     layer.Alpha,
			Beta:      layer.Beta,
			Octaves:   layer.Octaves,
			Seed:      seed + offset,
		})
	}

	// Land/coast heights, in about [-1, 1].
	land := perlinLayer(c.Land, 0)

	// Zone is very low frequency and mostly suppresses land.
	zone := noise.NewClamp(noise.NewScaleBias(perlinLayer(c.Zone, 1), c.Zone.Weight, 0.4), -1, 1)

	terms := []noise.Field{noise.NewMultiply(noise.NewScaleBias(land, c.Land.Weight, 0), zone)}

	if c.Ridges.Weight != 0 {
		ridged := noise.DefaultRidgedOptions()
		ridged.Frequency = c.Ridges.Frequency
		ridged.Lacunarity = c.Lacunarity
		ridged.Octaves = c.Octaves
		ridged.Seed = int(seed + 3)
		ridged.Quality = quality
		// Only raise land that is already above the zone's floor.
		terms = append(terms, noise.NewMultiply(
			noise.NewScaleBias(noise.NewRidgedMulti(ridged), c.Ridges.Weight*0.5, c.Ridges.Weight*0.5),
			noise.NewClamp(zone, 0, 1),
		))
	}

	if c.Latitude.Weight != 0 {
		// On a cylinder the distance from the origin only depends on y, so the
		// spheres become bands of latitude.
		terms = append(terms, noise.NewScaleBias(noise.NewInvert(noise.NewSphere(c.Latitude.Frequency)), c.Latitude.Weight, 0))
	}

	h := noise.Field(noise.NewAdd(terms...))

	if c.Floor.Weight != 0 {
		floor := noise.NewScaleBias(
			noise.NewClamp(noise.NewScaleBias(perlinLayer(c.Floor, 2), 4, 1.2), 0, 1),
			c.Floor.Weight,
			-1,
		)
		h = noise.NewMax(h, floor)
	}

	return h
}
