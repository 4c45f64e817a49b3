package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/msb-dashboard/backend/internal/pkg/bininfo"
)

const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

var (
	DatasetLoad = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "dataset", "load_total"),
		Help: "Dataset envelope loads by kind and outcome",
	}, []string{"kind", "outcome"})
	DatasetLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(bininfo.ServiceName, "dataset", "load_duration_seconds"),
		Help:    "Duration of reading and parsing a dataset file in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"kind"})
	BinActivityRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "bin_activity", "rows"),
		Help: "Rows with a usable SOURCE_BIN in the last aggregated activity CSV",
	})
	SnapshotLastModified = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "snapshot", "last_modified_seconds"),
		Help: "Unix modification time of each dataset file as last observed by the snapshot watcher",
	}, []string{"kind"})
	DeployTrigger = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "deploy", "trigger_total"),
		Help: "Deployment trigger attempts by result",
	}, []string{"result"})
)
