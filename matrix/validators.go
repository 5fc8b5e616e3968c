// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One canonical check of the route invariants over a distance/next-hop pair.
//   - Used by tests and by the graph store's self-check mode after each mutation.
//
// Checked, in this order, for every cell:
//   1. D[x][x] == 0 and H[x][x] == x.
//   2. D[x][y] is absent exactly when H[x][y] is, per each matrix's AbsentValue.
//   3. For present D[x][y], x != y: H[x][y] is a valid index, and both
//      D[x][H[x][y]] and D[H[x][y]][y] are present.

package matrix

import "fmt"

const opValidate = "Validate"

// Validate checks the route invariants of d and h and returns the first
// violation found, wrapped around ErrInvariant, or nil.
//
// Complexity: O(n²).
func Validate(d *Distances, h *Hops) error {
	n := d.Order()
	if h.Order() != n {
		return matrixErrorf(opValidate, fmt.Errorf("distances %d, hops %d: %w", n, h.Order(), ErrDimensionMismatch))
	}

	var (
		x, y, via int
		w         float64
		noDist    = d.AbsentValue()
		noHop     = h.AbsentValue()
	)
	for x = 0; x < n; x++ {
		if d.rows[x][x] != 0 || h.rows[x][x] != x {
			return violation(x, x, "diagonal must be (0, self)")
		}

		for y = 0; y < n; y++ {
			w, via = d.rows[x][y], h.rows[x][y]
			if (w == noDist) != (via == noHop) {
				return violation(x, y, "distance and next hop disagree on presence")
			}
			if x == y || via == noHop {
				continue
			}
			if via < 0 || via >= n {
				return violation(x, y, fmt.Sprintf("next hop %d out of range", via))
			}
			if d.rows[x][via] == noDist || d.rows[via][y] == noDist {
				return violation(x, y, fmt.Sprintf("next hop %d is not on a known sub-path", via))
			}
		}
	}

	return nil
}

func violation(x, y int, msg string) error {
	return matrixErrorf(opValidate, fmt.Errorf("cell (%d,%d): %s: %w", x, y, msg, ErrInvariant))
}
