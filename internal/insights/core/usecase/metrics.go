package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "social_insights",
			Name:      "pipeline_runs_total",
			Help:      "Pipeline runs by mode, provider and outcome",
		},
		[]string{"mode", "provider", "outcome"}, // "answered", "no_message", "error"
	)

	pipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "social_insights",
			Name:      "pipeline_duration_seconds",
			Help:      "Pipeline round trip latency",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		},
		[]string{"mode", "provider"},
	)
)
