// Package edgelist decodes a whitespace-separated stream of
// "from to weight" triples and feeds each one, in stream order, to an
// Inserter such as *graph.Store.
//
// Format:
//
//	A B 5
//	B C 3.5
//	C A 1e2
//
// Tokens are separated by any Unicode whitespace; a triple may span lines.
// Names are opaque (no quoting or escaping). The weight token must parse in
// full as a finite float64.
//
// Termination:
//
//   - End of stream ends decoding cleanly. An incomplete trailing triple
//     (one or two tokens) is dropped with a warning; no edge is inserted.
//   - A malformed weight is fatal: Decode stops and returns a *ParseError
//     matching ErrParse. Edges decoded before the failure have already been
//     inserted, so callers must discard the destination on error.
package edgelist
