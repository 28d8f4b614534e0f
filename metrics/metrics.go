// Package metrics exposes simulation counters to Prometheus.
//
// A Collector is registered on a caller-supplied prometheus.Registerer so
// that several runs (or tests) never collide on the default registry. Every
// method is safe on a nil *Collector, which is how metrics are switched off.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rewire"

// Collector groups the simulator's metric families, each labelled by algorithm.
type Collector struct {
	turns        *prometheus.CounterVec
	accepted     *prometheus.CounterVec
	removed      *prometheus.CounterVec
	coldStarts   *prometheus.CounterVec
	bridges      *prometheus.CounterVec
	edges        *prometheus.GaugeVec
	turnDuration *prometheus.HistogramVec
}

// New creates the metric families and registers them on reg.
// It panics if they are already registered there, like promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	labels := []string{"algorithm"}

	return &Collector{
		turns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Agent turns completed",
		}, labels),
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accepted_edges_total",
			Help:      "Recommendations accepted (reciprocal pairs connected)",
		}, labels),
		removed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removed_edges_total",
			Help:      "Reciprocal pairs disconnected",
		}, labels),
		coldStarts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cold_starts_total",
			Help:      "Turns served by the cold-start recommender",
		}, labels),
		bridges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridges_detected_total",
			Help:      "Neighbours withheld from disconnection as bridges",
		}, labels),
		edges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Directed edges in the graph",
		}, labels),
		turnDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "turn_duration_seconds",
			Help:      "Wall time of one agent turn",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, labels),
	}
}

// Turn summarizes one agent turn for ObserveTurn.
type Turn struct {
	Accepted  int
	Removed   int
	Bridges   int
	ColdStart bool
	Duration  time.Duration
}

// ObserveTurn records one completed turn.
func (c *Collector) ObserveTurn(algorithm string, t Turn) {
	if c == nil {
		return
	}
	c.turns.WithLabelValues(algorithm).Inc()
	c.accepted.WithLabelValues(algorithm).Add(float64(t.Accepted))
	c.removed.WithLabelValues(algorithm).Add(float64(t.Removed))
	c.bridges.WithLabelValues(algorithm).Add(float64(t.Bridges))
	if t.ColdStart {
		c.coldStarts.WithLabelValues(algorithm).Inc()
	}
	c.turnDuration.WithLabelValues(algorithm).Observe(t.Duration.Seconds())
}

// SetEdges publishes the current directed edge count.
func (c *Collector) SetEdges(algorithm string, n int) {
	if c == nil {
		return
	}
	c.edges.WithLabelValues(algorithm).Set(float64(n))
}
