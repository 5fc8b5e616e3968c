// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Full APSP closure (Floyd–Warshall) over a distance/next-hop pair.
//   - The route graph never calls this while inserting edges; it exists as an
//     independent reference the incremental result can be compared against.
//
// Contract:
//   - Absent (+Inf) means "no path"; the diagonal must already be (0, self).
//   - Strict '<' relaxation, fixed k → i → j loop order for determinism.

package matrix

import "fmt"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall closes d and h in place so that every D[i][j] is the shortest
// distance over all intermediate nodes and H[i][j] is the first hop on it.
//
// The graph store does not use it; it is the from-scratch oracle that the
// incremental repair is verified against.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Distances, h *Hops) error {
	n := d.Order()
	if h.Order() != n {
		return matrixErrorf(opFloydWarshall, fmt.Errorf("distances %d, hops %d: %w", n, h.Order(), ErrDimensionMismatch))
	}

	var (
		k, i, j      int
		ik, kj, cand float64
		rowK, rowI   []float64
		hopI         []int
	)
	for k = 0; k < n; k++ {
		rowK = d.rows[k]
		for i = 0; i < n; i++ {
			rowI = d.rows[i]
			ik = rowI[k]
			if ik == Absent { // i cannot reach k
				continue
			}
			hopI = h.rows[i]
			for j = 0; j < n; j++ {
				kj = rowK[j]
				if kj == Absent {
					continue
				}
				cand = ik + kj
				if cand < rowI[j] {
					rowI[j] = cand
					hopI[j] = hopI[k]
				}
			}
		}
	}

	return nil
}
