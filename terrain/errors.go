// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is smaller than 2x2 or its
	// backing slice does not hold exactly Width*Height values.
	ErrInvalidDimensions = errors.New("terrain: invalid grid dimensions")
	// ErrInvalidTolerance is returned when a basin size tolerance is not positive.
	ErrInvalidTolerance = errors.New("terrain: tolerance must be positive")
)
