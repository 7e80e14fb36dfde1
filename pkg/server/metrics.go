package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estatefinder_searches_total",
		Help: "The total number of processed searches",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estatefinder_search_cache_hits_total",
		Help: "The total number of searches answered from cache",
	})
	totalListings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "estatefinder_listings",
		Help: "The number of listings in the serving snapshot",
	})
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "estatefinder_search_duration_seconds",
		Help:    "Filter, sort and paginate time per search",
		Buckets: prometheus.DefBuckets,
	})
)
