// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package basin turns a raw heightmap into a clean land/water map.
//
// Normalize removes single cell dangles along the coastline. Classify then
// labels every cell as land, ocean, fillable lake or kept lake by flood
// filling connected water, and can raise fillable lakes just above sea level.
//
// Both operations take exclusive ownership of the heightmap for the duration
// of the call. They are deterministic, except that the basin fill jitter
// depends on Options.Seed.
package basin
