// Package metrics defines the custom Prometheus metrics of the gestor API.
// It is the single source of truth for metric names, labels and help strings.
//
// All metrics register with the default registry on package load through
// promauto; the /metrics handler exposes them next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gestor"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Client metrics ────────────────────────────────────────────────────────────

// ClientOperationsTotal counts successful client mutations.
// Label:
//   - op: "create", "update", "deactivate", "reactivate" or "delete"
var ClientOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_operations_total",
		Help:      "Total number of successful client mutations, by operation.",
	},
	[]string{"op"},
)

// ClientImportRowsTotal counts imported sheet rows.
// Label:
//   - result: "inserted" or "rejected"
var ClientImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_import_rows_total",
		Help:      "Total number of import rows processed, by result.",
	},
	[]string{"result"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UserOperationsTotal counts successful user administration calls.
// Label:
//   - op: "create", "update" or "delete"
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of successful user administration calls, by operation.",
	},
	[]string{"op"},
)

// ── Credential cleanup metrics ────────────────────────────────────────────────

// CleanupTotal counts outcomes of the orphaned identity cleanup queue.
// Label:
//   - result: "removed", "abandoned" or "dropped"
var CleanupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_cleanup_total",
		Help:      "Total number of orphaned credential identities handled, by result.",
	},
	[]string{"result"},
)

// CleanupQueueDepth tracks the identities waiting in each cleanup worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var CleanupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "identity_cleanup_queue_depth",
		Help:      "Current number of identities pending in each cleanup worker channel.",
	},
	[]string{"worker_id"},
)
