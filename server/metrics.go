// SPDX-License-Identifier: MIT

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

// Metrics holds the Prometheus collectors of the service. It owns its
// registry so several servers (tests) can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	// Render pipeline
	Renders        *prometheus.CounterVec // by inverse outcome
	RenderErrors   prometheus.Counter
	RenderDuration prometheus.Histogram
	RankWarnings   prometheus.Counter

	// Transport
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	WSConnections prometheus.Gauge

	// Sessions
	SessionEvents *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors, plus the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highdim_renders_total",
				Help: "Completed renders by inverse outcome",
			},
			[]string{"inverse"},
		),
		RenderErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "highdim_render_errors_total",
				Help: "Renders that failed before producing a view",
			},
		),
		RenderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "highdim_render_duration_seconds",
				Help:    "Generate, analyze and format time per render",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
			},
		),
		RankWarnings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "highdim_rank_warnings_total",
				Help: "Renders that raised the rank warning",
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highdim_http_requests_total",
				Help: "HTTP requests by method, route template and status code",
			},
			[]string{"method", "route", "code"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "highdim_http_request_duration_seconds",
				Help:    "HTTP request latency by route template",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		WSConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "highdim_ws_connections",
				Help: "Open WebSocket connections",
			},
		),
		SessionEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "highdim_session_events_total",
				Help: "Controller events by type and result",
			},
			[]string{"type", "result"},
		),
	}

	m.Registry.MustRegister(
		m.Renders,
		m.RenderErrors,
		m.RenderDuration,
		m.RankWarnings,
		m.HTTPRequests,
		m.HTTPDuration,
		m.WSConnections,
		m.SessionEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRender implements fullrank.Observer.
func (m *Metrics) ObserveRender(res fullrank.Result, err error) {
	if err != nil {
		m.RenderErrors.Inc()
		return
	}
	m.Renders.WithLabelValues(fullrank.InverseKind(res.Report.Inverse)).Inc()
	m.RenderDuration.Observe(res.Took.Seconds())
	if res.View.Warning != nil {
		m.RankWarnings.Inc()
	}
}

// RecordEvent counts one controller event outcome.
func (m *Metrics) RecordEvent(t fullrank.EventType, result string) {
	m.SessionEvents.WithLabelValues(string(t), result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
