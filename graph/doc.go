// Package graph maintains a weighted directed graph together with the
// shortest known path between every ordered pair of its nodes, updating the
// paths incrementally as edges are inserted.
//
// Overview:
//
//   - Store owns a registry of node names (ID = registration index) and two
//     n×n matrices from package matrix: shortest distances and first hops.
//   - InsertEdge adds or strengthens one directed edge and repairs every pair
//     whose shortest path can now run through it. The full matrix is never
//     recomputed from scratch.
//   - RoutesFrom and Path read the matrices back: the former lists every
//     reachable destination of a node, the latter replays the next-hop chain
//     into a concrete hop-by-hop route.
//
// Insertion rules:
//
//   - An edge that is strictly heavier than the already known path between
//     its endpoints is discarded without touching the store.
//   - An edge that is lighter than or equal to the known path replaces it
//     as a direct hop. Equal weights go to the newest edge, which keeps routes
//     short in hop count.
//   - After a replacement every ordered pair (start, end) is re-examined once,
//     O(n²), and improved when start→from→to→end is strictly shorter.
//
// Weights must be finite. Correctness assumes non-negative weights; negative
// weights are accepted but may produce negative cycles, which are not
// detected.
//
// Views:
//
//	Node and Route are small read-only values holding an index and a pointer
//	back to their Store. They carry no state of their own and must not
//	outlive the Store that produced them.
//
// Errors (sentinel):
//
//   - ErrUnknownNode    a name or ID is not registered (see UnknownNodeError).
//   - ErrNoRoute        both nodes exist but no path is known between them.
//   - ErrInvalidWeight  an edge weight is NaN or ±Inf.
//   - ErrInconsistent   path reconstruction exceeded its hop bound; this is
//     an internal invariant violation, not a user error.
//
// Thread safety:
//
//   - Store is not safe for concurrent use. Concurrent readers are fine only
//     while no goroutine is inserting.
//
// Complexity:
//
//   - AddNode:    O(n) lookup + O(n) amortised growth.
//   - InsertEdge: O(n²).
//   - RoutesFrom: O(n). Path: O(path length).
//   - Memory:     O(n²).
package graph
