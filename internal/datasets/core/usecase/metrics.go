package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "social_insights",
			Name:      "dataset_uploads_total",
			Help:      "Dataset uploads by format and outcome",
		},
		[]string{"format", "status"}, // "stored", "rejected", "failed"
	)

	uploadRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "social_insights",
			Name:      "dataset_rows",
			Help:      "Row count of stored datasets",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		},
	)
)
