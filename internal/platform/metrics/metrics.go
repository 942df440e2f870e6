// Package metrics owns the prometheus collectors of the api process
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "langdetect"

// Metrics groups the collectors; each instance owns its registry so tests
// never fight over the global one
type Metrics struct {
	reg *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Detections      *prometheus.CounterVec
	DetectDuration  prometheus.Histogram
	CacheLookups    *prometheus.CounterVec
	ProfileReloads  *prometheus.CounterVec
	Languages       prometheus.Gauge
}

// New builds and registers every collector, plus go and process collectors
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Detections by outcome",
		}, []string{"outcome"}),
		DetectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detect_seconds",
			Help:      "Time spent in the scoring passes of one detection",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome",
		}, []string{"result"}),
		ProfileReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_reloads_total",
			Help:      "Profile registry reloads by outcome",
		}, []string{"result"}),
		Languages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "languages",
			Help:      "Languages in the active registry",
		}),
	}
	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests, m.RequestDuration,
		m.Detections, m.DetectDuration,
		m.CacheLookups, m.ProfileReloads, m.Languages,
	)
	return m
}

// Registry exposes the gatherer, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the text exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveHTTP has the access log observer shape
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDetection records one detection outcome
func (m *Metrics) ObserveDetection(outcome string, elapsed time.Duration) {
	m.Detections.WithLabelValues(outcome).Inc()
	m.DetectDuration.Observe(elapsed.Seconds())
}

// CacheHit counts a lookup
func (m *Metrics) CacheHit(hit bool) {
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

// Reloaded records a registry swap attempt and the resulting language count
func (m *Metrics) Reloaded(langs int, err error) {
	if err != nil {
		m.ProfileReloads.WithLabelValues("error").Inc()
		return
	}
	m.ProfileReloads.WithLabelValues("ok").Inc()
	m.Languages.Set(float64(langs))
}
