package rroute

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes.
const (
	outcomeMatched   = "matched"
	outcomeNotFound  = "not_found"
	outcomeWrongKind = "wrong_kind"
)

// Dispatch results.
const (
	dispatchTrue       = "true"
	dispatchFalse      = "false"
	dispatchUnresolved = "unresolved"
	dispatchWrongKind  = "wrong_kind"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "rroute").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the router's Prometheus collectors.
// A nil *Metrics records nothing.
type Metrics struct {
	resolutions *prometheus.CounterVec
	dispatches  *prometheus.CounterVec
	routes      prometheus.Gauge
}

// NewMetrics creates and registers the router collectors.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "rroute"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of route resolutions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of route dispatches by result",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes",
			Help:        "Number of registered routes",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) resolved(outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) dispatched(result string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(result).Inc()
}

func (m *Metrics) setRoutes(count int) {
	if m == nil {
		return
	}
	m.routes.Set(float64(count))
}
