// File: view.go
// Role: Read-only projections (Node, Route) over a Store.
// Views hold an index and a back-pointer; all data is read from the Store on
// demand. They must not outlive the Store and are never mutated.

package graph

// Node is a read-only view of one registered node.
type Node struct {
	store *Store
	id    int
}

// ID returns the node's registration index.
func (n Node) ID() int { return n.id }

// Name returns the node's registered name.
func (n Node) Name() string { return n.store.names[n.id] }

// String implements fmt.Stringer.
func (n Node) String() string { return n.Name() }

// Routes returns every route leaving this node, self route included.
func (n Node) Routes() []Route { return n.store.RoutesFrom(n.id) }

// Route is a read-only view of the current shortest path between two nodes:
// its endpoints, its first hop and its total weight.
type Route struct {
	store         *Store
	from, to, via int

	Weight float64
}

// From returns the origin node.
func (r Route) From() Node { return Node{store: r.store, id: r.from} }

// To returns the destination node.
func (r Route) To() Node { return Node{store: r.store, id: r.to} }

// Via returns the first hop after the origin.
func (r Route) Via() Node { return Node{store: r.store, id: r.via} }

// Direct reports whether the route is a single hop (Via == To).
func (r Route) Direct() bool { return r.via == r.to }

// Self reports whether the route leads from a node to itself.
func (r Route) Self() bool { return r.from == r.to }
