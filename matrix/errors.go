// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All grid operations return these sentinels and tests check them via
// errors.Is. Context is added with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilGrid indicates that a nil *Grid was used.
	ErrNilGrid = errors.New("matrix: nil grid")
)
