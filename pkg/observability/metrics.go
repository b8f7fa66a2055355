// Package observability instruments drag lifecycle events with
// Prometheus metrics. The instrumentation plugs into the engine as a
// LifecycleHooks value, so the core stays free of metrics concerns.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/espalier/pkg/domain"
)

// Metrics holds the drag lifecycle collectors.
type Metrics struct {
	dragsStarted *prometheus.CounterVec
	dropsApplied *prometheus.CounterVec
	dropsIgnored *prometheus.CounterVec
	cancels      *prometheus.CounterVec
	dragDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer for the global registry, or a private one
// in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		dragsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "drags_started_total",
			Help:      "Drag gestures that entered the Dragging state.",
		}, []string{"list"}),
		dropsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "drops_applied_total",
			Help:      "Drops that changed the order and reached the sink.",
		}, []string{"list"}),
		dropsIgnored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "drops_ignored_total",
			Help:      "Drops settled as no-ops (self-drop, empty target).",
		}, []string{"list"}),
		cancels: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "drags_cancelled_total",
			Help:      "Gestures terminated by cancel instead of a drop.",
		}, []string{"list"}),
		dragDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "espalier",
			Name:      "drag_duration_seconds",
			Help:      "Wall time from lift to drop.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"list"}),
	}
}

// Hooks returns the LifecycleHooks wiring for espalier.WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDragStart: func(_ context.Context, e *domain.DragEvent) {
			m.dragsStarted.WithLabelValues(e.ListID).Inc()
		},
		OnDrop: func(_ context.Context, e *domain.DropEvent) {
			if e.Applied {
				m.dropsApplied.WithLabelValues(e.ListID).Inc()
			} else {
				m.dropsIgnored.WithLabelValues(e.ListID).Inc()
			}
			m.dragDuration.WithLabelValues(e.ListID).Observe(e.Duration.Seconds())
		},
		OnDragCancel: func(_ context.Context, e *domain.DragEvent) {
			m.cancels.WithLabelValues(e.ListID).Inc()
		},
	}
}
