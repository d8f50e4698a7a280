// Package metrics defines and registers all custom Prometheus metrics for
// the LifeSource API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lifesource"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successful self-service signups.
// Label:
//   - role: the granted role ("donor" or "recipient")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by granted role.",
	},
	[]string{"role"},
)

// AuthRejectionsTotal counts requests rejected by the auth or role gate.
// Label:
//   - reason: "missing_token", "invalid_token", or "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth or role gate.",
	},
	[]string{"reason"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts newly booked donation appointments.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of donation appointments booked.",
	},
)

// RequestsCreatedTotal counts newly opened blood requests.
// Label:
//   - urgency: "low", "medium", "high", or "critical"
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of blood requests opened, by urgency.",
	},
	[]string{"urgency"},
)

// BloodUnitsAddedTotal counts blood units registered into inventory.
// Label:
//   - blood_type: e.g. "O-", "AB+"
var BloodUnitsAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blood_units_added_total",
		Help:      "Total number of blood units added to inventory, by blood type.",
	},
	[]string{"blood_type"},
)

// NotificationsBroadcastTotal counts broadcast notifications.
var NotificationsBroadcastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_broadcast_total",
		Help:      "Total number of notifications broadcast.",
	},
)
