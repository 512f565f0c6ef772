package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionsRecorded *prometheus.CounterVec
	TransactionAmount    *prometheus.HistogramVec
	ExtractionFallbacks  *prometheus.CounterVec

	// Alert metrics
	AlertsRaised *prometheus.CounterVec

	// Analysis metrics
	AnalysisFailures *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	RedisErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transaction metrics
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_transactions_recorded_total",
				Help: "Total number of transactions recorded by type",
			},
			[]string{"type"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_transaction_amount_rupees",
				Help:    "Transaction amounts in rupees",
				Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
			},
			[]string{"type"},
		),
		ExtractionFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_extraction_fallbacks_total",
				Help: "Total number of extraction fields filled with defaults",
			},
			[]string{"field"},
		),

		// Alert metrics
		AlertsRaised: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_alerts_raised_total",
				Help: "Total number of alerts raised by type and severity",
			},
			[]string{"type", "severity"},
		),

		// Analysis metrics
		AnalysisFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_analysis_failures_total",
				Help: "Total number of analysis passes that degraded on error",
			},
			[]string{"pass"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "cashflow_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_cache_hits_total",
				Help: "Total cache hits",
			},
			[]string{"key"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_cache_misses_total",
				Help: "Total cache misses",
			},
			[]string{"key"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
