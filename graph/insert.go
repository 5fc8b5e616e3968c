// SPDX-License-Identifier: MIT
// Package: graph
//
// Purpose:
//   - Insert one directed edge and repair every shortest path it improves.
//
// Contract:
//   - Distances only ever decrease; a known path never disappears.
//   - After InsertEdge returns, no pair can be improved through the new edge
//     (single O(n²) pass, strict '<').

package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routegraph/matrix"
)

const opInsertEdge = "InsertEdge"

// InsertEdge adds the directed edge from→to with the given weight, creating
// either endpoint on first mention, and updates every shortest path that
// becomes cheaper by using it.
//
// If a path from→to strictly lighter than weight is already known the edge
// is discarded and the returned Insertion has Applied == false. Otherwise the
// edge becomes the direct from→to route, ties included.
//
// Returns ErrInvalidWeight (and mutates nothing) if weight is NaN or ±Inf.
//
// Complexity: O(n²).
func (s *Store) InsertEdge(from, to string, weight float64) (Insertion, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Insertion{From: -1, To: -1, Weight: weight},
			fmt.Errorf("%s: %q→%q weight=%v: %w", opInsertEdge, from, to, weight, ErrInvalidWeight)
	}

	ins := Insertion{
		From:   s.AddNode(from),
		To:     s.AddNode(to),
		Weight: weight,
	}

	if s.place(ins.From, ins.To, weight) {
		ins.Applied = true
		ins.Improved = s.repair(ins.From, ins.To, weight)
	}

	if s.selfCheck {
		if err := matrix.Validate(s.dist, s.hops); err != nil {
			panic(fmt.Errorf("%s: %w: %w", opInsertEdge, ErrInconsistent, err))
		}
	}

	for _, o := range s.observers {
		o.EdgeInserted(ins)
	}

	return ins, nil
}

// place applies the overwrite policy to the direct cell from→to and reports
// whether the edge was kept. Absent is +Inf, so an unknown path never wins
// the comparison.
func (s *Store) place(from, to int, weight float64) bool {
	d, _ := s.dist.Row(from)
	if d[to] < weight {
		return false
	}

	h, _ := s.hops.Row(from)
	d[to] = weight
	h[to] = to

	return true
}

// repair re-examines every ordered pair (start, end), start != end, and
// reroutes it through from→to when start→from + weight + to→end is strictly
// shorter than the current route. It returns the number of improved pairs.
//
// Every read happens per pair against the live matrices, so an update made
// earlier in the scan is visible to later pairs.
func (s *Store) repair(from, to int, weight float64) int {
	var (
		n          = len(s.names)
		start, end int
		improved   int
		a, b, cand float64
		dStart     []float64
		hStart     []int
	)
	dTo, _ := s.dist.Row(to)
	hFrom, _ := s.hops.Row(from)

	for start = 0; start < n; start++ {
		dStart, _ = s.dist.Row(start)
		hStart, _ = s.hops.Row(start)

		for end = 0; end < n; end++ {
			if start == end {
				continue
			}

			a, b = dStart[from], dTo[end]
			if a == matrix.Absent || b == matrix.Absent {
				continue
			}

			cand = a + weight + b
			if cand < dStart[end] {
				dStart[end] = cand
				if start == from {
					hStart[end] = hFrom[to]
				} else {
					hStart[end] = hStart[from]
				}
				improved++
			}
		}
	}

	return improved
}
