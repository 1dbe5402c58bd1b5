package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the fridge service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database metrics
	DatabaseConnections   prometheus.Gauge
	DatabaseQueriesTotal  *prometheus.CounterVec
	DatabaseQueryDuration *prometheus.HistogramVec

	// Redis metrics
	RedisConnections     prometheus.Gauge
	RedisCommandsTotal   *prometheus.CounterVec
	RedisCommandDuration *prometheus.HistogramVec

	// Business metrics
	InventoryOperationsTotal *prometheus.CounterVec
	ProductLookupsTotal      *prometheus.CounterVec
	ProductLookupDuration    *prometheus.HistogramVec
	ViewComputationsTotal    prometheus.Counter
	DegradedDatesTotal       prometheus.Counter
	RangeFilterSkipsTotal    prometheus.Counter
	ItemsPerView             prometheus.Histogram
	RemindersSentTotal       *prometheus.CounterVec
	CacheHits                *prometheus.CounterVec
	CacheMisses              *prometheus.CounterVec

	// Health metrics
	DependencyHealth *prometheus.GaugeVec
}

// New creates a new Metrics instance with all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fridge_service_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fridge_service_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),

		// Database metrics
		DatabaseConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fridge_service_database_connections",
				Help: "Current number of database connections",
			},
		),
		DatabaseQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_database_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "status"},
		),
		DatabaseQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fridge_service_database_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fridge_service_redis_connections",
				Help: "Current number of Redis connections",
			},
		),
		RedisCommandsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_redis_commands_total",
				Help: "Total number of Redis commands",
			},
			[]string{"command", "status"},
		),
		RedisCommandDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fridge_service_redis_command_duration_seconds",
				Help:    "Duration of Redis commands in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),

		// Business metrics
		InventoryOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_inventory_operations_total",
				Help: "Total number of inventory operations",
			},
			[]string{"operation", "status"},
		),
		ProductLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_product_lookups_total",
				Help: "Total number of product lookups by kind",
			},
			[]string{"kind", "status"},
		),
		ProductLookupDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fridge_service_product_lookup_duration_seconds",
				Help:    "Duration of upstream product lookups in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		ViewComputationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fridge_service_view_computations_total",
				Help: "Total number of inventory view computations",
			},
		),
		DegradedDatesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fridge_service_degraded_dates_total",
				Help: "Total number of records excluded from date filters because their date did not parse",
			},
		),
		RangeFilterSkipsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fridge_service_range_filter_skips_total",
				Help: "Total number of view computations where an inverted date range disabled the range stage",
			},
		),
		ItemsPerView: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fridge_service_items_per_view",
				Help:    "Number of items in a computed inventory view",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		RemindersSentTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_reminders_sent_total",
				Help: "Total number of expiration reminder notifications",
			},
			[]string{"status"},
		),
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fridge_service_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),

		// Health metrics
		DependencyHealth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fridge_service_dependency_health",
				Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
			},
			[]string{"dependency"},
		),
	}
}

// Initialize sets up initial metric values
func (m *Metrics) Initialize() {
	m.DependencyHealth.WithLabelValues("postgres").Set(0)
	m.DependencyHealth.WithLabelValues("redis").Set(0)
}

// UpdateDependencyHealth updates the health status of a dependency
func (m *Metrics) UpdateDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	m.DependencyHealth.WithLabelValues(dependency).Set(value)
}

// Shutdown performs cleanup of metrics resources
func (m *Metrics) Shutdown() {
	// Currently no cleanup needed for Prometheus metrics
}
