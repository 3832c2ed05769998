package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dashboardsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "social_insights",
		Name:      "dashboards_total",
		Help:      "Dashboard computations by outcome",
	},
	[]string{"status"}, // "ok", "invalid_table"
)
