package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/graph"
	"github.com/katalvlaran/routegraph/metrics"
)

func TestCollector_CountsStoreActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	s := graph.New(graph.WithObserver(c))

	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 5},
		{"B", "C", 3},
		{"A", "C", 10},
	} {
		_, err := s.InsertEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(c.Nodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.EdgesInserted.WithLabelValues(metrics.ResultApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EdgesInserted.WithLabelValues(metrics.ResultDiscarded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PairsImproved))

	expected := `
# HELP routegraph_pairs_improved_total Node pairs whose shortest route was shortened by an inserted edge.
# TYPE routegraph_pairs_improved_total counter
routegraph_pairs_improved_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "routegraph_pairs_improved_total"))
}

func TestNew_NilRegisterer(t *testing.T) {
	c := metrics.New(nil)
	c.NodeAdded(0, "x")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Nodes))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
