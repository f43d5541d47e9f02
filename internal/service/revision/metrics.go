package revision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonEdit    = "edit"
	reasonRestore = "restore"
)

var (
	revisionsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskflow",
		Subsystem: "revision",
		Name:      "written_total",
		Help:      "Note revisions written, by reason (edit or restore).",
	}, []string{"reason"})

	revisionsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskflow",
		Subsystem: "revision",
		Name:      "evicted_total",
		Help:      "Note revisions deleted by the retention cap.",
	})

	restoresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskflow",
		Subsystem: "revision",
		Name:      "restores_total",
		Help:      "Completed note restores.",
	})
)
