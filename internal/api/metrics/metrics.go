// Package metrics defines and registers all custom Prometheus metrics for
// the online shop API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "onlineshop"

// OrdersCreatedTotal counts successfully placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// OrdersReconciledTotal counts SHIPPED→DELIVERED transitions applied by the
// hourly reconciliation sweep.
var OrdersReconciledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_reconciled_total",
		Help:      "Total number of orders advanced to DELIVERED by the status sweep.",
	},
)

// ReportsRenderedTotal counts PDF renders.
// Labels:
//   - kind: "receipt" or "customer_list"
//   - result: "ok" or "error"
var ReportsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_rendered_total",
		Help:      "Total number of PDF report renders, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ProductCacheTotal counts product cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
