package transition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processEpochTime = promauto.NewSummary(prometheus.SummaryOpts{
		Name: "beacon_process_epoch_milliseconds",
		Help: "Duration of one epoch transition in milliseconds",
	})
)
