package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Block Fetcher Metrics
var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fetcher_cache_hits_total",
		Help: "The total number of blocks served from the block store",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fetcher_cache_misses_total",
		Help: "The total number of blocks that had to be fetched from the RPC",
	})

	CacheWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fetcher_cache_write_failures_total",
		Help: "The total number of fetched blocks that could not be written to the block store",
	})

	LastFetchedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fetcher_last_fetched_block_from_rpc",
		Help: "The last block number fetched from the RPC",
	})
)

// RPC Metrics
var (
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpc_get_block_requests_total",
		Help: "The total number of eth_getBlockByNumber requests by outcome",
	}, []string{"outcome"})

	RPCDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rpc_get_block_duration_seconds",
		Help:    "Time taken by eth_getBlockByNumber requests",
		Buckets: prometheus.DefBuckets,
	})
)

// API Metrics
var (
	LinksExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_links_extracted_total",
		Help: "The total number of links returned to API clients",
	})

	BlocksPerRangeRequest = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "api_blocks_per_range_request",
		Help:    "The number of blocks requested per range request",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)
