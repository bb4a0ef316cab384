// Package metrics defines and registers all custom Prometheus metrics for the
// requisition API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics alongside the HTTP metrics collected by the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "requisition"

// RequisitionsCreatedTotal counts newly created requisitions.
// Label:
//   - status: initial status, "Rascunho" (draft) or "Pendente" (submitted)
var RequisitionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requisitions_created_total",
		Help:      "Total number of requisitions created, by initial status.",
	},
	[]string{"status"},
)

// DecisionsTotal counts approval decisions applied.
// Label:
//   - decisao: "APROVADA" or "REJEITADA"
var DecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decisions_total",
		Help:      "Total number of approval decisions recorded.",
	},
	[]string{"decisao"},
)

// TrackingUpdatesTotal counts fulfillment tracking updates applied.
// Label:
//   - status: the new status set by the update (e.g. "Em cotação")
var TrackingUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_updates_total",
		Help:      "Total number of fulfillment tracking updates applied.",
	},
	[]string{"status"},
)

// TrackingDedupTotal counts deduplication decisions on tracking updates.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new update, processed)
var TrackingDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_dedup_total",
		Help:      "Total number of tracking dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
