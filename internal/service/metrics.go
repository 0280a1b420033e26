package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"campusdocs/internal/model"
)

// Metrics holds the render counters. A nil *Metrics records nothing.
type Metrics struct {
	rendered *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the render metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_rendered_total",
				Help: "Total number of documents produced, by kind and outcome.",
			},
			[]string{"kind", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "document_render_duration_seconds",
				Help:    "Time spent drawing and encoding a document.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{m.rendered, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(kind model.Kind, took time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(string(kind)).Observe(took.Seconds())
}

func (m *Metrics) count(kind model.Kind, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rendered.WithLabelValues(string(kind), status).Inc()
}
