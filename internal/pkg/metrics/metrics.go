// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors the handlers and services record into.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CheckInsTotal       *prometheus.CounterVec
	CheckOutsTotal      prometheus.Counter
	EventsPublished     *prometheus.CounterVec
	KioskSubscribers    prometheus.Gauge
}

// New creates the metric set on its own registry so tests can build
// isolated instances.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_http_requests_total",
			Help: "Total HTTP requests served, by route and status class.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "attendance_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		CheckInsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_check_ins_total",
			Help: "Check-ins recorded, by resulting status.",
		}, []string{"status"}),
		CheckOutsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_check_outs_total",
			Help: "Check-outs recorded.",
		}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_events_published_total",
			Help: "Events published to the notification queue, by type.",
		}, []string{"type"}),
		KioskSubscribers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "attendance_kiosk_subscribers",
			Help: "Currently connected kiosk event stream subscribers.",
		}),
	}
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
