// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag); tests match them with errors.Is. Nothing in this package
// panics on a caller-supplied index.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, Order()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a distance and a next-hop matrix
	// passed together have different orders.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvariant indicates that a distance/next-hop pair violates one of the
	// route invariants checked by Validate.
	ErrInvariant = errors.New("matrix: route invariant violated")
)

// matrixErrorf tags err with the failing operation.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
