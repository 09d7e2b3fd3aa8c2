// Package metrics defines the custom Prometheus metrics for the booking
// backend. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymclub"

// OrdersSubmittedTotal counts successfully submitted orders.
var OrdersSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of orders submitted.",
	},
)

// ReviewsSubmittedTotal counts successfully submitted reviews.
var ReviewsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted.",
	},
)

// StatusUpdatesTotal counts admin status changes.
// Labels:
//   - entity: "order" or "review"
//   - status: the status applied (e.g. "approved")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of admin status updates, by entity and resulting status.",
	},
	[]string{"entity", "status"},
)

// AuthFailuresTotal counts rejected requests at the authorization guard.
// Label:
//   - reason: "missing_header", "bad_scheme", "invalid_token", or "role_mismatch"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authorization guard.",
	},
	[]string{"reason"},
)

// Audit pipeline metrics.

// AuditProcessedTotal counts audit events that were persisted.
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_processed_total",
		Help:      "Total number of audit events successfully persisted, by entity.",
	},
	[]string{"entity"},
)

// AuditErrorsTotal counts audit events that failed processing.
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed processing, by reason.",
	},
	[]string{"reason"},
)

// AuditDedupTotal counts deduplication decisions, labelled hit/miss.
var AuditDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dedup_total",
		Help:      "Total number of audit dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditProcessingDuration measures end-to-end audit event processing time.
var AuditProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of audit event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)
