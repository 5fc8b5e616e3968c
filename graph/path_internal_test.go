package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath_InconsistentHopsAreBounded(t *testing.T) {
	s := New()
	if _, err := s.InsertEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.InsertEdge("B", "C", 1); err != nil {
		t.Fatal(err)
	}

	// Point A's hop toward C back at A: the walk can never arrive.
	h, err := s.hops.Row(0)
	require.NoError(t, err)
	h[2] = 0

	_, err = s.Path(0, 2)
	require.ErrorIs(t, err, ErrInconsistent)
	require.Contains(t, err.Error(), "no arrival after 3 hops")
}

func TestPath_InconsistentMissingHop(t *testing.T) {
	s := New()
	if _, err := s.InsertEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}

	h, err := s.hops.Row(0)
	require.NoError(t, err)
	h[1] = -1

	_, err = s.Path(0, 1)
	require.ErrorIs(t, err, ErrInconsistent)
}

func TestSelfCheck_PanicsOnViolation(t *testing.T) {
	s := New(WithSelfCheck())
	if _, err := s.InsertEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}

	d, err := s.dist.Row(1)
	require.NoError(t, err)
	d[1] = 3 // break the diagonal

	require.Panics(t, func() { _, _ = s.InsertEdge("A", "C", 1) })
}
