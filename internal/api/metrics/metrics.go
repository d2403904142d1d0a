// Package metrics defines and registers all custom Prometheus metrics for the
// player platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics self-register with the default Prometheus registry via promauto at
// package import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "platform"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role assigned to the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, labelled by role.",
	},
	[]string{"role"},
)

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "allow_public", "allow", "redirect_unauthenticated", "redirect_role"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, labelled by outcome.",
	},
	[]string{"decision"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notifications delivered to the store.
// Label:
//   - kind: notification kind (e.g. "application_received")
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications delivered.",
	},
	[]string{"kind"},
)

// NotificationsDedupTotal counts dedup outcomes for queued notifications.
// Label:
//   - result: "delivered" (first occurrence) or "duplicate" (suppressed)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of notification dedup outcomes.",
	},
	[]string{"result"},
)

// NotifyDeliverySeconds observes how long a single notification delivery
// takes, from dequeue to store insert.
var NotifyDeliverySeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notify_delivery_seconds",
		Help:      "Time taken to deliver a single notification to the store.",
	},
)

// NotifyQueueDepth tracks the current number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
