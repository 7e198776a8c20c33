// Package metrics exposes Prometheus collectors for the stylization service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "stylize"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Payload routing
	PayloadBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "payload_builds_total",
			Help:      "Total number of payload builds by family, payload shape and outcome",
		},
		[]string{"family", "shape", "status"},
	)

	StrengthClampedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "strength_clamped_total",
			Help:      "Number of builds whose nominal strength was moved into the family range",
		},
		[]string{"family"},
	)

	// Fragment rotation
	RotationDrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rotation",
			Name:      "draws_total",
			Help:      "Total number of fragment draws per vocabulary",
		},
		[]string{"vocabulary"},
	)

	RotationResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rotation",
			Name:      "resets_total",
			Help:      "Rotation resets per vocabulary and reason (exhausted, idle)",
		},
		[]string{"vocabulary", "reason"},
	)

	// Dispatch
	DispatchCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "calls_total",
			Help:      "Total number of generation backend calls",
		},
		[]string{"model", "status"},
	)

	DispatchCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "call_duration_seconds",
			Help:      "Generation backend submit latency in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	// Prompt enhancement
	EnhanceCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enhance",
			Name:      "calls_total",
			Help:      "Total number of free-text prompt enhancement calls",
		},
		[]string{"model", "status"},
	)
)
