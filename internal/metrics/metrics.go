// Package metrics records query runs and fixture sizes on a private
// Prometheus registry and renders them in the text exposition format.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/mesh-intelligence/prototypes/internal/queries"
)

// Recorder implements queries.Observer.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.GaugeVec
}

// NewRecorder returns a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prototypes_query_runs_total",
				Help: "Total number of query runs",
			},
			[]string{"dataset", "query"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prototypes_query_duration_seconds",
				Help:    "Query run latency in seconds",
				Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
			},
			[]string{"dataset"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "prototypes_fixture_records",
				Help: "Number of records loaded per fixture collection",
			},
			[]string{"collection"},
		),
	}
}

// OnEvent counts finished runs and observes their duration.
func (r *Recorder) OnEvent(event queries.Event) {
	if event.Type != queries.EventRunEnd {
		return
	}
	r.runs.WithLabelValues(event.Dataset, event.Query).Inc()
	r.duration.WithLabelValues(event.Dataset).Observe(event.Duration.Seconds())
}

// ObserveFixtures sets the record gauge of every collection in counts.
func (r *Recorder) ObserveFixtures(counts map[string]int) {
	for collection, n := range counts {
		r.records.WithLabelValues(collection).Set(float64(n))
	}
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every gathered metric family to w.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
