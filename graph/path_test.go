package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/graph"
)

func TestPathByName_UnknownName(t *testing.T) {
	s := graph.New()
	mustInsert(t, s, "A", "B", 1)
	before := snapshot(s)

	_, err := s.PathByName("A", "Z")
	require.ErrorIs(t, err, graph.ErrUnknownNode)
	var unk *graph.UnknownNodeError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "Z", unk.Name)

	// from is checked first when both sides are unknown.
	_, err = s.PathByName("Q", "Z")
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "Q", unk.Name)
	assert.EqualError(t, err, `graph: unknown node "Q"`)

	assert.Equal(t, before, snapshot(s), "failed lookups leave the graph untouched")
	assert.Equal(t, 2, s.NodeCount())

	// Independent queries keep working.
	p, err := s.PathByName("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Weight)
}

func TestPath_SelfPath(t *testing.T) {
	s := graph.New()
	s.AddNode("solo")

	p, err := s.Path(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Weight)
	assert.Equal(t, 0, p.Hops())
	require.Len(t, p.Steps, 1)
	assert.Equal(t, "solo", p.From.Name())
	assert.Equal(t, "solo", p.To.Name())
}

func TestPath_UnregisteredIDs(t *testing.T) {
	s := graph.New()
	s.AddNode("A")

	_, err := s.Path(0, 4)
	assert.ErrorIs(t, err, graph.ErrNoRoute)
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	_, err = s.Path(-1, 0)
	assert.ErrorIs(t, err, graph.ErrNoRoute)
}

func TestPath_NoRoute(t *testing.T) {
	s := graph.New()
	mustInsert(t, s, "A", "B", 1)
	s.AddNode("C")

	_, err := s.PathByName("A", "C")
	require.ErrorIs(t, err, graph.ErrNoRoute)
	assert.Contains(t, err.Error(), `"A"→"C"`)

	var p graph.Path
	assert.Equal(t, 0, p.Hops())
}

func TestPath_LongChain(t *testing.T) {
	s := graph.New(graph.WithSelfCheck())
	names := []string{"a", "b", "c", "d", "e", "f"}
	for i := 1; i < len(names); i++ {
		mustInsert(t, s, names[i-1], names[i], float64(i))
	}

	p, err := s.PathByName("a", "f")
	require.NoError(t, err)
	assert.Equal(t, 15.0, p.Weight)
	assert.Equal(t, 5, p.Hops())
	for i, st := range p.Steps {
		assert.Equal(t, names[i], st.Node.Name())
	}
}
