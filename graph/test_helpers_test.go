package graph_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/graph"
	"github.com/katalvlaran/routegraph/matrix"
)

// cell is one (distance, next hop) pair; ok is false for absent cells.
type cell struct {
	w   float64
	via int
	ok  bool
}

// snapshot copies every cell of the store's matrices.
func snapshot(s *graph.Store) [][]cell {
	n := s.NodeCount()
	out := make([][]cell, n)
	for i := 0; i < n; i++ {
		out[i] = make([]cell, n)
		for j := 0; j < n; j++ {
			w, ok := s.Distance(i, j)
			via, _ := s.NextHop(i, j)
			out[i][j] = cell{w: w, via: via, ok: ok}
		}
	}

	return out
}

// mustInsert inserts an edge and fails the test on error.
func mustInsert(t testing.TB, s *graph.Store, from, to string, w float64) graph.Insertion {
	t.Helper()

	ins, err := s.InsertEdge(from, to, w)
	require.NoError(t, err)

	return ins
}

// edge is a directed weighted edge between generated node names.
type edge struct {
	from, to string
	w        float64
}

// randomEdges returns m edges over n nodes named "n0".."n{n-1}" with integral
// weights in [1, maxW], so float sums stay exact.
func randomEdges(rng *rand.Rand, n, m, maxW int) []edge {
	out := make([]edge, m)
	for i := range out {
		out[i] = edge{
			from: nodeName(rng.Intn(n)),
			to:   nodeName(rng.Intn(n)),
			w:    float64(1 + rng.Intn(maxW)),
		}
	}

	return out
}

func nodeName(i int) string {
	return "n" + strconv.Itoa(i)
}

// reference recomputes all-pairs shortest distances from scratch over the
// store's registry using the lightest direct edge per pair.
func reference(t *testing.T, s *graph.Store, edges []edge) *matrix.Distances {
	t.Helper()

	d, h := matrix.NewDistances(), matrix.NewHops()
	n := s.NodeCount()
	for i := 0; i < n; i++ {
		d.Grow()
		h.Grow()
		require.NoError(t, d.Set(i, i, 0))
		require.NoError(t, h.Set(i, i, i))
	}

	for _, e := range edges {
		i, ok := s.LookupID(e.from)
		require.True(t, ok)
		j, ok := s.LookupID(e.to)
		require.True(t, ok)

		cur, err := d.At(i, j)
		require.NoError(t, err)
		if e.w < cur {
			require.NoError(t, d.Set(i, j, e.w))
			require.NoError(t, h.Set(i, j, j))
		}
	}

	require.NoError(t, matrix.FloydWarshall(d, h))

	return d
}
