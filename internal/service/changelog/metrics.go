package changelog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskflow",
		Subsystem: "changelog",
		Name:      "records_written_total",
		Help:      "Todo change records persisted, by action.",
	}, []string{"action"})

	noopSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskflow",
		Subsystem: "changelog",
		Name:      "noop_suppressed_total",
		Help:      "Todo updates that changed no tracked field and wrote no record, by action.",
	}, []string{"action"})
)
