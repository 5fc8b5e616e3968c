// SPDX-License-Identifier: MIT
// Package: graph
//
// Purpose:
//   - Node registry and the distance/next-hop matrices, grown in lockstep.
//   - Read-only accessors used by the path reconstructor and renderers.
//
// Contract:
//   - IDs are registration indices: stable, never reused or reordered.
//   - After AddNode returns, D[id][id] == 0 and H[id][id] == id; every other
//     cell of the new row and column is absent.

package graph

import (
	"github.com/katalvlaran/routegraph/matrix"
)

// Store is an incrementally maintained all-pairs shortest-path graph.
// The zero value is not usable; call New.
type Store struct {
	names []string          // names[id]
	dist  *matrix.Distances // shortest known distance, matrix.Absent if none
	hops  *matrix.Hops      // first hop on that path, matrix.NoHop if none

	observers []Observer
	selfCheck bool
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		dist: matrix.NewDistances(),
		hops: matrix.NewHops(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddNode registers name and returns its ID. A name that is already
// registered returns its existing ID and leaves the store untouched.
//
// Complexity: O(n).
func (s *Store) AddNode(name string) int {
	if id, ok := s.LookupID(name); ok {
		return id
	}

	s.names = append(s.names, name)
	id := s.dist.Grow()
	s.hops.Grow()

	// A node reaches itself at zero cost without moving.
	d, _ := s.dist.Row(id)
	h, _ := s.hops.Row(id)
	d[id] = 0
	h[id] = id

	for _, o := range s.observers {
		o.NodeAdded(id, name)
	}

	return id
}

// NodeCount returns the number of registered nodes.
func (s *Store) NodeCount() int {
	return len(s.names)
}

// LookupID returns the ID registered for name by exact match.
func (s *Store) LookupID(name string) (int, bool) {
	for i := range s.names {
		if s.names[i] == name {
			return i, true
		}
	}

	return -1, false
}

// Names returns a copy of the registry in ID order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Node returns the view for id.
func (s *Store) Node(id int) (Node, error) {
	if !s.has(id) {
		return Node{}, unknownID(id)
	}

	return Node{store: s, id: id}, nil
}

// Nodes returns one view per registered node in registration order.
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.names))
	for i := range out {
		out[i] = Node{store: s, id: i}
	}

	return out
}

// Routes returns every known route, grouped by origin in ID order and by
// destination in ID order within a group. Self routes are included.
//
// Complexity: O(n²).
func (s *Store) Routes() []Route {
	var out []Route
	for id := range s.names {
		out = append(out, s.RoutesFrom(id)...)
	}

	return out
}

// Distance returns D[from][to] and whether a path is known.
func (s *Store) Distance(from, to int) (float64, bool) {
	if !s.dist.Has(from, to) {
		return 0, false
	}
	w, _ := s.dist.At(from, to)

	return w, true
}

// NextHop returns H[from][to] and whether a path is known.
func (s *Store) NextHop(from, to int) (int, bool) {
	if !s.hops.Has(from, to) {
		return matrix.NoHop, false
	}
	via, _ := s.hops.At(from, to)

	return via, true
}

// has reports whether id is registered.
func (s *Store) has(id int) bool {
	return id >= 0 && id < len(s.names)
}
