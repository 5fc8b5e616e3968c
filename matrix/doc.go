// Package matrix provides the growable square storage behind the route graph:
// a distance matrix of float64 weights and a next-hop matrix of node indices.
//
// Both matrices are square, row-major and grow one row and one column at a
// time. A freshly grown row or column is filled with the matrix's absent
// value (Absent for distances, NoHop for next hops), so a new node starts out
// unreachable from and to every other node.
//
// Conventions:
//
//   - +Inf (Absent) means "no known path" in a distance matrix. It compares
//     greater than every finite weight, so relaxation code can use a plain
//     strict '<' without a separate presence test.
//   - -1 (NoHop) means "no next hop" and must agree with Absent cell by cell.
//   - Indices are 0-based and stable; rows are never removed or reordered.
//
// Errors:
//
//   - ErrOutOfRange   index outside [0, Order()).
//   - ErrInvariant    a distance/next-hop pair violates the route invariants
//     (see Validate).
//
// Matrices are not safe for concurrent mutation; callers synchronise.
package matrix
