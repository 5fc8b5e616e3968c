// Package render writes a route graph, or a single route through it, as
// plain text.
//
// Graph output lists every node in registration order followed by one
// tab-indented line per reachable destination:
//
//	A:
//		B 5
//		C 8 B
//
// The third column names the first hop and appears only when the route is
// not a direct edge. Route output is one line:
//
//	A -> C = 8: A -(5)> B -(3)> C
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/routegraph/graph"
)

// weightDigits is the significant-digit count of a weight on output.
const weightDigits = 6

// Weight formats a weight in %g style with at most six significant digits,
// so summation noise such as 0.1+0.2 prints as 0.3.
func Weight(w float64) string {
	return strconv.FormatFloat(w, 'g', weightDigits, 64)
}

// Graph writes every node of s with its non-self routes.
func Graph(w io.Writer, s *graph.Store) error {
	bw := bufio.NewWriter(w)
	for _, n := range s.Nodes() {
		fmt.Fprintf(bw, "%s:\n", n.Name())
		for _, r := range n.Routes() {
			if r.Self() {
				continue
			}
			fmt.Fprintf(bw, "\t%s %s", r.To().Name(), Weight(r.Weight))
			if !r.Direct() {
				fmt.Fprintf(bw, " %s", r.Via().Name())
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// Route writes the shortest known route between two named nodes.
//
// It returns *graph.UnknownNodeError when a name is not registered and an
// error matching graph.ErrNoRoute when no path is known; nothing is written
// in either case. Message turns both into the user-facing text.
func Route(w io.Writer, s *graph.Store, from, to string) error {
	p, err := s.PathByName(from, to)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s -> %s = %s: ", from, to, Weight(p.Weight))
	for i, st := range p.Steps {
		bw.WriteString(st.Node.Name())
		if i < len(p.Steps)-1 {
			fmt.Fprintf(bw, " -(%s)> ", Weight(st.Cost))
		}
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Message returns the one-line report for a failed route query, or "" if err
// is not a query error (unknown name or missing route).
func Message(err error, from, to string) string {
	var unk *graph.UnknownNodeError
	switch {
	case errors.As(err, &unk):
		return "Did not recognise node name: " + unk.Name
	case errors.Is(err, graph.ErrNoRoute):
		return fmt.Sprintf("No route exists between %s and %s", from, to)
	default:
		return ""
	}
}
