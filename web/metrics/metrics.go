// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package metrics holds the Prometheus collectors for the web server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mdhender/rythuvedika/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rythuvedika"

// Metrics is registered on its own registry so that tests and multiple
// servers in one process do not collide on the default registry.
type Metrics struct {
	registry *prometheus.Registry

	ComplaintsSubmitted prometheus.Counter
	StatusChanges       *prometheus.CounterVec
	RequestCounter      *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RequestsInFlight    prometheus.Gauge
}

// New creates the collectors. When complaintsByStatus is not nil it is
// sampled on every scrape for the rythuvedika_complaints gauge.
func New(complaintsByStatus func() map[model.Status]int) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		ComplaintsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complaints_submitted_total",
			Help:      "Total number of complaints filed",
		}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "Total number of status updates, by new status",
		}, []string{"status"}),
		RequestCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
	}
	if complaintsByStatus != nil {
		reg.MustRegister(&complaintCollector{
			desc: prometheus.NewDesc(
				prometheus.BuildFQName(namespace, "", "complaints"),
				"Number of stored complaints, by status",
				[]string{"status"}, nil,
			),
			sample: complaintsByStatus,
		})
	}
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// StatusChanged counts an update to status.
func (m *Metrics) StatusChanged(status model.Status) {
	m.StatusChanges.WithLabelValues(string(status)).Inc()
}

// Instrument wraps next with the request counter, duration and in-flight
// collectors under the route label.
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		next(rec, r)
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code        int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.code, r.wroteHeader = code, true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

type complaintCollector struct {
	desc   *prometheus.Desc
	sample func() map[model.Status]int
}

func (c *complaintCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *complaintCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.sample()
	for _, status := range model.Statuses() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(counts[status]), string(status))
	}
}
