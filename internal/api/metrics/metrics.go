// Package metrics defines and registers all custom Prometheus metrics for the
// ticketing API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketing"

// TicketsCreatedTotal counts newly opened tickets.
// Label:
//   - type: "problem", "task", or "service_request"
var TicketsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total number of tickets created, by ticket type.",
	},
	[]string{"type"},
)

// StatusTransitionsTotal counts recorded status transitions.
// Labels:
//   - from: the status before the transition
//   - to: the status after the transition
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of ticket status transitions recorded in the history log.",
	},
	[]string{"from", "to"},
)

// CommentsPostedTotal counts replies appended to ticket threads.
var CommentsPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_posted_total",
		Help:      "Total number of comments posted.",
	},
)

// NotificationsSentTotal counts outbound notification emails.
// Label:
//   - group: "assignee", "admins", "subscribers", or "test"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification emails sent, by recipient group.",
	},
	[]string{"group"},
)

// NotificationErrorsTotal counts failed notification deliveries.
// Label:
//   - group: the recipient group whose delivery failed
var NotificationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_errors_total",
		Help:      "Total number of notification emails that failed to send.",
	},
	[]string{"group"},
)

// NotificationQueueDepth tracks pending jobs per dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notification jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
