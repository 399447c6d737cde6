// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "codevault"

var (
	// Registry holds every collector served on /metrics
	Registry = prometheus.NewRegistry()

	// EncodeCounter counts encode calls by method and outcome (ok or an error kind)
	EncodeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "encode_total",
		Help:      "Number of encode requests",
	}, []string{"method", "outcome"})

	// DecodeCounter counts decode calls by method and mode (exact or blind)
	DecodeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decode_total",
		Help:      "Number of decode requests",
	}, []string{"method", "mode"})

	// AnalysisLatency is how long blind analysis takes per requested method
	AnalysisLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Blind analysis latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// CandidatesFound is the number of candidates a blind analysis returned
	CandidatesFound = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_candidates",
		Help:      "Candidates returned per blind analysis",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})

	// AnalysisCache counts cache lookups by result (hit or miss)
	AnalysisCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_cache_total",
		Help:      "Blind analysis cache lookups",
	}, []string{"result"})

	// DetectedMethod counts detector verdicts
	DetectedMethod = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detected_method_total",
		Help:      "Methods reported by the detector",
	}, []string{"method", "confidence"})

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter",
	})

	// HTTPCallCounter (HTTP) how many http requests
	HTTPCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP calls received",
	}, []string{"code", "method"})
	// HTTPLatency (HTTP) how long http request handling takes
	HTTPLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_response_duration_seconds",
		Help:      "histogram of request latencies",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	// HTTPInFlight (HTTP) how many http requests exist
	HTTPInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_in_flight",
		Help:      "A gauge of requests currently being served.",
	})

	bindOnce sync.Once
)

// Bind registers all collectors with Registry. It is safe to call more than once.
func Bind() {
	bindOnce.Do(func() {
		Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			EncodeCounter,
			DecodeCounter,
			AnalysisLatency,
			CandidatesFound,
			AnalysisCache,
			DetectedMethod,
			RateLimited,
			HTTPCallCounter,
			HTTPLatency,
			HTTPInFlight,
		)
	})
}

// Handler serves Registry in the Prometheus exposition format
func Handler() http.Handler {
	Bind()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// Instrument wraps next with the HTTP collectors
func Instrument(next http.Handler) http.Handler {
	Bind()
	return promhttp.InstrumentHandlerInFlight(HTTPInFlight,
		promhttp.InstrumentHandlerCounter(HTTPCallCounter,
			promhttp.InstrumentHandlerDuration(HTTPLatency, next),
		),
	)
}
