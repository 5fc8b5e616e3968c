// SPDX-License-Identifier: MIT
// Package: graph
//
// Purpose:
//   - Read routes back out of the matrices: per-origin route lists and
//     hop-by-hop path reconstruction from the next-hop matrix.
//
// Contract:
//   - Reconstruction is bounded by NodeCount() hops; running past the bound
//     means the matrices are inconsistent and yields ErrInconsistent.

package graph

import (
	"fmt"

	"github.com/katalvlaran/routegraph/matrix"
)

const opPath = "Path"

// Step is one node on a reconstructed path.
type Step struct {
	Node Node
	Cost float64 // weight of the hop to the next step; 0 on the final step
}

// Path is a concrete route from one node to another.
type Path struct {
	From, To Node
	Weight   float64 // total, equal to the sum of step costs
	Steps    []Step  // From first, To last
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p.Steps) == 0 {
		return 0
	}

	return len(p.Steps) - 1
}

// RoutesFrom returns the route from id to every destination it can reach,
// ordered by destination ID and including the zero-weight self route.
// An unregistered id yields nil.
//
// Complexity: O(n).
func (s *Store) RoutesFrom(id int) []Route {
	if !s.has(id) {
		return nil
	}

	d, _ := s.dist.Row(id)
	h, _ := s.hops.Row(id)

	out := make([]Route, 0, len(d))
	for to := range d {
		if d[to] == matrix.Absent {
			continue
		}
		out = append(out, Route{store: s, from: id, to: to, via: h[to], Weight: d[to]})
	}

	return out
}

// Path reconstructs the current shortest path from one node ID to another.
//
// Errors:
//   - ErrNoRoute (together with ErrUnknownNode) if either ID is not registered.
//   - ErrNoRoute if no path is known.
//   - ErrInconsistent if the next-hop chain does not reach the destination
//     within NodeCount() hops.
func (s *Store) Path(from, to int) (Path, error) {
	if !s.has(from) || !s.has(to) {
		return Path{}, fmt.Errorf("%s %d→%d: %w: %w", opPath, from, to, ErrNoRoute, ErrUnknownNode)
	}

	total, ok := s.Distance(from, to)
	if !ok {
		return Path{}, fmt.Errorf("%s %q→%q: %w", opPath, s.names[from], s.names[to], ErrNoRoute)
	}

	var (
		n     = len(s.names)
		steps = make([]Step, 0, 4)
		cur   = from
		next  int
		cost  float64
		found bool
	)
	for hop := 0; ; hop++ {
		if cur == to {
			steps = append(steps, Step{Node: Node{store: s, id: cur}})
			break
		}
		if hop >= n {
			return Path{}, s.inconsistent(from, to, fmt.Sprintf("no arrival after %d hops", hop))
		}

		next, found = s.NextHop(cur, to)
		if !found || !s.has(next) {
			return Path{}, s.inconsistent(from, to, fmt.Sprintf("no next hop at %q", s.names[cur]))
		}
		cost, found = s.Distance(cur, next)
		if !found {
			return Path{}, s.inconsistent(from, to, fmt.Sprintf("hop %q→%q has no distance", s.names[cur], s.names[next]))
		}

		steps = append(steps, Step{Node: Node{store: s, id: cur}, Cost: cost})
		cur = next
	}

	return Path{
		From:   Node{store: s, id: from},
		To:     Node{store: s, id: to},
		Weight: total,
		Steps:  steps,
	}, nil
}

// PathByName resolves both names and reconstructs the path between them.
// An unresolved name yields *UnknownNodeError for the first side that fails,
// checking from before to.
func (s *Store) PathByName(from, to string) (Path, error) {
	fromID, ok := s.LookupID(from)
	if !ok {
		return Path{}, &UnknownNodeError{Name: from}
	}
	toID, ok := s.LookupID(to)
	if !ok {
		return Path{}, &UnknownNodeError{Name: to}
	}

	return s.Path(fromID, toID)
}

func (s *Store) inconsistent(from, to int, msg string) error {
	return fmt.Errorf("%s %q→%q: %s: %w", opPath, s.names[from], s.names[to], msg, ErrInconsistent)
}

func unknownID(id int) error {
	return fmt.Errorf("node id %d: %w", id, ErrUnknownNode)
}
