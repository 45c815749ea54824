// Package metrics defines and registers all custom Prometheus metrics for the
// clinic back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountMutationsTotal counts account writes that reached the store.
// Label:
//   - action: "create", "update" or "delete"
var AccountMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_mutations_total",
		Help:      "Total number of account create/update/delete operations.",
	},
	[]string{"action"},
)

// IdempotentReplaysTotal counts create requests answered from the
// idempotency store instead of inserting a new row.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of creates replayed via Idempotency-Key.",
	},
)

// RoleCacheTotal counts role-set lookups by outcome.
// Label:
//   - result: "hit" (served from cache), "miss" (refreshed from store),
//     "fallback" (store unreachable or empty, hardcoded set served)
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role-set lookups, by cache outcome.",
	},
	[]string{"result"},
)
