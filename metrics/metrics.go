// Package metrics provides Prometheus metrics for the bar pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ObservationsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ib_observations_processed_total",
		Help: "Observations consumed by completed build passes.",
	}, []string{"dataset"})

	BarsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ib_bars_emitted_total",
		Help: "Imbalance bars emitted.",
	}, []string{"dataset"})

	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ib_runs_total",
		Help: "Pipeline runs by outcome.",
	}, []string{"dataset", "status"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ib_run_duration_seconds",
		Help:    "Wall time of one pipeline run.",
		Buckets: prometheus.DefBuckets,
	}, []string{"dataset"})

	LastThreshold = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ib_threshold_last",
		Help: "Adaptive threshold after the last processed observation.",
	}, []string{"dataset"})

	Compression = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ib_compression_ratio",
		Help: "Bars emitted per post-seed observation.",
	}, []string{"dataset"})
)

// StartMetricsServer serves /metrics on addr.
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}
