// Package metrics exposes route graph activity as Prometheus collectors.
// A Collector is a graph.Observer: register it with graph.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/routegraph/graph"
)

// Result label values for EdgesInserted.
const (
	ResultApplied   = "applied"
	ResultDiscarded = "discarded"
)

// Collector counts nodes, inserted edges and repaired pairs.
type Collector struct {
	Nodes         prometheus.Gauge
	EdgesInserted *prometheus.CounterVec
	PairsImproved prometheus.Counter
}

var _ graph.Observer = (*Collector)(nil)

// New creates a Collector and registers it with reg. A nil reg leaves the
// collectors unregistered.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "routegraph_nodes",
			Help: "Number of registered nodes.",
		}),
		EdgesInserted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "routegraph_edges_inserted_total",
			Help: "Edges passed to InsertEdge, labelled by whether they were applied or discarded.",
		}, []string{"result"}),
		PairsImproved: f.NewCounter(prometheus.CounterOpts{
			Name: "routegraph_pairs_improved_total",
			Help: "Node pairs whose shortest route was shortened by an inserted edge.",
		}),
	}
}

// NodeAdded implements graph.Observer.
func (c *Collector) NodeAdded(int, string) {
	c.Nodes.Inc()
}

// EdgeInserted implements graph.Observer.
func (c *Collector) EdgeInserted(ins graph.Insertion) {
	result := ResultDiscarded
	if ins.Applied {
		result = ResultApplied
	}
	c.EdgesInserted.WithLabelValues(result).Inc()
	c.PairsImproved.Add(float64(ins.Improved))
}
