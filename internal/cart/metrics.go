package cart

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opAdd    = "add"
	opUpdate = "update_quantity"
	opRemove = "remove"
	opFetch  = "fetch"
	opClear  = "clear"

	statusOK    = "ok"
	statusError = "error"
	statusLocal = "local"
)

var (
	cartOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations by outcome",
		},
		[]string{"op", "status"},
	)

	cartRemoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_remote_call_duration_seconds",
			Help:    "Histogram of remote cart gateway call durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	cartRollbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_rollbacks_total",
			Help: "Total number of optimistic mutations rolled back after a failed remote call",
		},
		[]string{"op"},
	)

	cartMergedLinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_merged_lines_total",
			Help: "Guest cart lines merged into a user cart at login, by outcome",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		cartOperationsTotal,
		cartRemoteDuration,
		cartRollbacksTotal,
		cartMergedLinesTotal,
	)
}
