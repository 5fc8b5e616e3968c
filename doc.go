// Package routegraph keeps the shortest route between every pair of nodes in
// a weighted directed graph up to date as edges arrive, without recomputing
// the whole path matrix.
//
// Layout:
//
//	matrix/    growable distance and next-hop matrices, invariant checks,
//	           and a Floyd–Warshall reference closure
//	graph/     the store: node registry, incremental edge insertion, path
//	           reconstruction and read-only Node/Route views
//	edgelist/  decoder for "from to weight" text streams
//	render/    plain-text output for a whole graph or a single route
//	metrics/   Prometheus collectors fed by store observer callbacks
//	cmd/routegraph/  command line entry point
//
// Quick example:
//
//	s := graph.New()
//	s.InsertEdge("A", "B", 5)
//	s.InsertEdge("B", "C", 3)
//	s.InsertEdge("A", "C", 10) // discarded: A→B→C costs 8
//	p, _ := s.PathByName("A", "C")
//	// p.Steps: A -(5)> B -(3)> C, p.Weight == 8
//
// Weights are float64 and assumed non-negative. Every structure grows
// monotonically; nothing is ever removed.
package routegraph
