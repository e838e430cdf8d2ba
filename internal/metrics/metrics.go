// Package metrics exposes Prometheus collectors for the order pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"print4me/internal/domain"
)

const namespace = "print4me"

// Dispatch outcomes.
const (
	OutcomeSent          = "sent"
	OutcomeFailed        = "failed"
	OutcomeNotConfigured = "not_configured"
)

// Metrics holds every collector the server reports. A nil *Metrics records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	ordersAccepted   prometheus.Counter
	ordersRejected   *prometheus.CounterVec
	pagesBilled      prometheus.Counter
	detections       *prometheus.CounterVec
	dispatches       *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
	dispatchInFlight prometheus.Gauge
}

// New creates a Metrics instance on a fresh registry that also carries the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		ordersAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "accepted_total",
			Help:      "Print orders accepted and queued for notification.",
		}),
		ordersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Print orders rejected before dispatch.",
		}, []string{"reason"}),
		pagesBilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "pages_billed_total",
			Help:      "Pages billed across accepted orders, before copies.",
		}),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pagecount",
			Name:      "detections_total",
			Help:      "Page detections by document kind and result.",
		}, []string{"kind", "result"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "dispatches_total",
			Help:      "Order notification attempts by outcome.",
		}, []string{"outcome"}),
		dispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent building and sending an order notification.",
			Buckets:   prometheus.DefBuckets,
		}),
		dispatchInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "dispatches_in_flight",
			Help:      "Notifications currently being sent.",
		}),
	}
	reg.MustRegister(
		m.ordersAccepted,
		m.ordersRejected,
		m.pagesBilled,
		m.detections,
		m.dispatches,
		m.dispatchDuration,
		m.dispatchInFlight,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObservePageCount records one page detection. It satisfies pagecount.Observer.
func (m *Metrics) ObservePageCount(kind domain.DocumentKind, pages int) {
	if m == nil {
		return
	}
	result := "detected"
	if pages <= 0 {
		result = "undetermined"
	}
	m.detections.WithLabelValues(string(kind), result).Inc()
}

// OrderAccepted records an accepted order and its billed pages.
func (m *Metrics) OrderAccepted(pages int) {
	if m == nil {
		return
	}
	m.ordersAccepted.Inc()
	m.pagesBilled.Add(float64(pages))
}

// OrderRejected records an order that never reached dispatch.
func (m *Metrics) OrderRejected(reason string) {
	if m == nil {
		return
	}
	m.ordersRejected.WithLabelValues(reason).Inc()
}

// DispatchStarted marks a notification as in flight.
func (m *Metrics) DispatchStarted() {
	if m == nil {
		return
	}
	m.dispatchInFlight.Inc()
}

// DispatchFinished records the outcome and duration of a notification.
func (m *Metrics) DispatchFinished(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.dispatchInFlight.Dec()
	m.dispatches.WithLabelValues(outcome).Inc()
	m.dispatchDuration.Observe(d.Seconds())
}
