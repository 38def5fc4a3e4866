package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	cacheResultHit   = "hit"
	cacheResultMiss  = "miss"
	cacheResultError = "error"
	cacheResultStore = "store"
)

//nolint:gochecknoglobals
var (
	searchCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weapon_market",
		Subsystem: "search",
		Name:      "cache_total",
		Help:      "Search cache lookups and writes by result.",
	}, []string{"result"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "weapon_market",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Search latency split by cache outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})
)
