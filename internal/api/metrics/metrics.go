// Package metrics defines and registers all custom Prometheus metrics for the
// DriveEase web portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time; the router exposes
// them on /metrics together with the per-route echo request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (backend refused the credentials), or
//     "error" (backend unreachable or failing)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts route-guard evaluations on protected pages.
// Label:
//   - outcome: "render" or "redirect_login"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route-guard authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls issued to the rental backend.
// Labels:
//   - method: HTTP method of the upstream call
//   - status: numeric status code, or "unreachable" on transport failure
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the rental backend.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures the round-trip time of backend calls.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of rental-backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
