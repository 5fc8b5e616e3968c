// SPDX-License-Identifier: MIT
// Package: graph
//
// Declares sentinel errors, typed errors, store options and the observer hook.

package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the graph store.
var (
	// ErrUnknownNode indicates that a node name or ID is not registered.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrNoRoute indicates that both nodes exist but no path between them is known.
	ErrNoRoute = errors.New("graph: no route exists")

	// ErrInvalidWeight indicates an edge weight that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")

	// ErrInconsistent indicates that the next-hop matrix did not lead to the
	// destination within the hop bound. It signals a bug in the store, never
	// bad input.
	ErrInconsistent = errors.New("graph: internal consistency violation")
)

// UnknownNodeError reports which node name failed to resolve.
// It matches ErrUnknownNode under errors.Is.
type UnknownNodeError struct {
	Name string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("graph: unknown node %q", e.Name)
}

func (e *UnknownNodeError) Unwrap() error {
	return ErrUnknownNode
}

// Insertion describes the outcome of one InsertEdge call.
type Insertion struct {
	From, To int     // resolved endpoint IDs
	Weight   float64 // weight as passed in
	Applied  bool    // false when a strictly shorter path already existed
	Improved int     // pairs (start != end) whose route got shorter via the edge
}

// Observer receives notifications about store mutations. Callbacks run
// synchronously on the mutating goroutine and must not call back into the store.
type Observer interface {
	NodeAdded(id int, name string)
	EdgeInserted(ins Insertion)
}

// Option configures a Store at construction.
type Option func(*Store)

// WithObserver registers o for mutation callbacks. May be given more than once.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithSelfCheck validates the full route invariants after every insertion and
// panics with ErrInconsistent on a violation. O(n²) extra per insertion;
// intended for tests and debugging.
func WithSelfCheck() Option {
	return func(s *Store) { s.selfCheck = true }
}
