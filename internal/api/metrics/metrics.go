// Package metrics defines the portal's custom Prometheus metrics. It is the
// single source of truth for metric names, labels and help strings. All
// metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in, sign-up and sign-out calls.
// Labels:
//   - action: "login", "register" or "logout"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication calls, by action and result.",
	},
	[]string{"action", "result"},
)

// SessionViewsTotal counts root-router decisions.
// Label:
//   - view: "login", "admin_dashboard" or "citizen_dashboard"
var SessionViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_views_total",
		Help:      "Total number of session lookups, by routed view.",
	},
	[]string{"view"},
)

// ── Complaint metrics ─────────────────────────────────────────────────────────

// ComplaintsSubmittedTotal counts complaints filed by citizens.
var ComplaintsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_submitted_total",
		Help:      "Total number of complaints submitted, by category and priority.",
	},
	[]string{"category", "priority"},
)

// ComplaintTriageTotal counts admin status decisions.
var ComplaintTriageTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_triage_total",
		Help:      "Total number of complaint triage updates, by resulting status.",
	},
	[]string{"status"},
)

// ── Admin metrics ─────────────────────────────────────────────────────────────

// AdminMutationsTotal counts admin writes to the directory and notice board.
// Labels:
//   - entity: "amenity" or "announcement"
//   - action: "create", "update", "delete" or "toggle"
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of admin mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// DashboardDuration measures how long the admin counters take to compute.
var DashboardDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_stats_duration_seconds",
		Help:      "Duration of the admin dashboard stats fan-out.",
		Buckets:   prometheus.DefBuckets,
	},
)
