// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Growable n×n storage for the route graph (distances and next hops).
//   - Rows are separate slices so Grow appends one cell per row instead of
//     reallocating a flat buffer; row slices are handed out to hot loops.
//
// Contract:
//   - Every new cell is the matrix's absent value; callers set the diagonal.
//   - At/Set validate indices and return ErrOutOfRange; Row does not copy.

package matrix

import (
	"fmt"
	"math"
)

// Absent is the distance value meaning "no known path".
var Absent = math.Inf(1)

// NoHop is the next-hop value meaning "no known path".
const NoHop = -1

// Operation tags for error wrapping.
const (
	opAt  = "At"
	opSet = "Set"
	opRow = "Row"
)

// Square is a growable square matrix whose unset cells hold a fixed absent value.
type Square[T comparable] struct {
	rows   [][]T // rows[i][j], len(rows) == len(rows[i]) for every i
	absent T     // fill value for grown cells
}

// Distances is the shortest-distance matrix: Absent marks a missing path.
type Distances = Square[float64]

// Hops is the next-hop matrix: NoHop marks a missing path.
type Hops = Square[int]

// NewSquare returns an empty (0×0) matrix that fills grown cells with absent.
func NewSquare[T comparable](absent T) *Square[T] {
	return &Square[T]{absent: absent}
}

// NewDistances returns an empty distance matrix filled with Absent on growth.
func NewDistances() *Distances {
	return NewSquare(Absent)
}

// NewHops returns an empty next-hop matrix filled with NoHop on growth.
func NewHops() *Hops {
	return NewSquare(NoHop)
}

// Order returns n for an n×n matrix.
func (m *Square[T]) Order() int {
	return len(m.rows)
}

// AbsentValue returns the fill value used for missing cells.
func (m *Square[T]) AbsentValue() T {
	return m.absent
}

// Grow appends one column of absent cells to every existing row, then one
// row of absent cells, and returns the index of the new row/column.
//
// Complexity: O(n) amortised.
func (m *Square[T]) Grow() int {
	var i int
	for i = range m.rows {
		m.rows[i] = append(m.rows[i], m.absent)
	}

	n := len(m.rows) + 1
	row := make([]T, n)
	for i = range row {
		row[i] = m.absent
	}
	m.rows = append(m.rows, row)

	return n - 1
}

// At returns the cell (i, j).
func (m *Square[T]) At(i, j int) (T, error) {
	if err := m.check(i, j); err != nil {
		var zero T
		return zero, matrixErrorf(opAt, err)
	}

	return m.rows[i][j], nil
}

// Set overwrites the cell (i, j).
func (m *Square[T]) Set(i, j int, v T) error {
	if err := m.check(i, j); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.rows[i][j] = v

	return nil
}

// Has reports whether cell (i, j) exists and holds a non-absent value.
func (m *Square[T]) Has(i, j int) bool {
	if m.check(i, j) != nil {
		return false
	}

	return m.rows[i][j] != m.absent
}

// Row returns row i without copying. The slice aliases the matrix storage and
// is only valid until the next Grow.
func (m *Square[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d of %d: %w", i, len(m.rows), ErrOutOfRange))
	}

	return m.rows[i], nil
}

// check validates (i, j) against the current order.
func (m *Square[T]) check(i, j int) error {
	n := len(m.rows)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, n, n, ErrOutOfRange)
	}

	return nil
}
