// Package metrics defines the custom Prometheus metrics for the dealership
// gateway. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealership"

// ── Downstream call metrics ───────────────────────────────────────────────────

// DownstreamRequestsTotal counts outbound calls to downstream services.
// Labels:
//   - service: "dealers", "sentiment" or "searchcars"
//   - outcome: "ok", "status_error" (non-2xx) or "transport_error"
var DownstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "downstream_requests_total",
		Help:      "Total number of outbound downstream HTTP calls, by service and outcome.",
	},
	[]string{"service", "outcome"},
)

// DownstreamRequestDuration measures outbound call latency per service.
var DownstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "downstream_request_duration_seconds",
		Help:      "Duration of outbound downstream HTTP calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service"},
)

// ── Sentiment fan-out metrics ─────────────────────────────────────────────────

// SentimentAnnotationsTotal counts per-review sentiment annotations.
// Label:
//   - result: "ok" or "failed" (item degraded to an empty label)
var SentimentAnnotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sentiment_annotations_total",
		Help:      "Total number of review sentiment annotations, by result.",
	},
	[]string{"result"},
)

// ── Identity metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("ok" or "rejected").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)
