package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registered through promauto on the default registry; /metrics serves them.
var (
	// SearchesTotal counts finished searches by discipline and outcome (found, not_found, cancelled).
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degrees_searches_total",
			Help: "Total number of path searches run",
		},
		[]string{"discipline", "outcome"},
	)

	// SearchExplored records how many states a search expanded before finishing.
	SearchExplored = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "degrees_search_explored_states",
			Help:    "Number of states expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"discipline"},
	)

	// SearchDuration measures wall time per search.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "degrees_search_duration_seconds",
			Help:    "Duration of path searches in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"discipline"},
	)

	// HttpRequestsTotal counts API requests by method, route and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degrees_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// GraphSize tracks the loaded graph, labeled by entity kind.
	GraphSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "degrees_graph_entities",
			Help: "Number of entities in the loaded collaboration graph",
		},
		[]string{"kind"},
	)
)
