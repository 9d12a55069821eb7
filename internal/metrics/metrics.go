// Package metrics defines and registers the custom Prometheus metrics of the
// WareSmart console. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "waresmart"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts through the session context.
// Label:
//   - result: "success", "auth_error", "network_error", "storage_error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionInitTotal counts startup checks.
// Label:
//   - outcome: "restored", "anonymous", "failed"
var SessionInitTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_init_total",
		Help:      "Outcome of the one-shot startup session check.",
	},
	[]string{"outcome"},
)

// GuardDecisionsTotal counts route admission verdicts.
// Labels:
//   - guard: "authenticated" or "anonymous"
//   - decision: "checking", "redirect", "admit"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Route admission decisions, by guard and decision.",
	},
	[]string{"guard", "decision"},
)

// ── Backend metrics ───────────────────────────────────────────────────────────

// BackendRequestDuration measures REST backend calls.
// Labels:
//   - op: logical operation, e.g. "login", "users.list"
//   - outcome: "ok" or "error"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of calls to the warehouse REST backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)

// MockFallbacksTotal counts reads served from built-in mock data.
// Label:
//   - resource: "users", "dashboard.stats", "dashboard.chart", "dashboard.top_products"
var MockFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_fallbacks_total",
		Help:      "Reads answered with mock data because the backend call failed.",
	},
	[]string{"resource"},
)
