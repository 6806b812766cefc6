// Package metrics exposes Prometheus collectors for the tuning workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RepositionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wanderfeast",
		Name:      "repositions_total",
		Help:      "Forced repositioning runs by outcome.",
	}, []string{"outcome"})

	RepositionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wanderfeast",
		Name:      "reposition_duration_seconds",
		Help:      "Wall time of forced repositioning runs.",
		Buckets:   prometheus.DefBuckets,
	})

	PresetApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wanderfeast",
		Name:      "preset_applied_total",
		Help:      "Difficulty preset applications by preset name.",
	}, []string{"preset"})

	ShardsDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wanderfeast",
		Name:      "shards_discovered_total",
		Help:      "Memory shards discovered across all players.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wanderfeast",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status class.",
	}, []string{"method", "class"})
)
