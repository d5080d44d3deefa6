// Package metrics defines and registers the custom Prometheus metrics for the
// TechStore admin API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techstore"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AdminMutationsTotal counts successful admin mutations.
// Labels:
//   - entity: the managed entity ("user", "settings")
//   - op: "create", "update" or "delete"
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of successful admin mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// StatsCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of dashboard stats cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
