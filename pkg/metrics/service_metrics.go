package metrics

import (
	"time"
)

// ServiceMetrics implements the service.MetricsInterface for the service layer.
type ServiceMetrics struct {
	metrics *Metrics
}

// NewServiceMetrics creates a new ServiceMetrics instance.
// It acts as an adapter to provide metrics to the service layer.
func NewServiceMetrics(m *Metrics) *ServiceMetrics {
	return &ServiceMetrics{
		metrics: m,
	}
}

// RecordInventoryOperation records an inventory operation metric.
func (sm *ServiceMetrics) RecordInventoryOperation(operation, status string) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.InventoryOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordProductLookup records an upstream product lookup.
func (sm *ServiceMetrics) RecordProductLookup(kind string, duration time.Duration, status string) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.ProductLookupsTotal.WithLabelValues(kind, status).Inc()
	if status == "success" {
		sm.metrics.ProductLookupDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// RecordViewComputation records the outcome of one inventory view computation.
func (sm *ServiceMetrics) RecordViewComputation(itemCount, degradedDates int, rangeSkipped bool) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.ViewComputationsTotal.Inc()
	sm.metrics.ItemsPerView.Observe(float64(itemCount))
	if degradedDates > 0 {
		sm.metrics.DegradedDatesTotal.Add(float64(degradedDates))
	}
	if rangeSkipped {
		sm.metrics.RangeFilterSkipsTotal.Inc()
	}
}

// RecordReminder records an expiration reminder notification attempt.
func (sm *ServiceMetrics) RecordReminder(status string) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.RemindersSentTotal.WithLabelValues(status).Inc()
}

// RecordCacheHit records a cache hit.
func (sm *ServiceMetrics) RecordCacheHit(cacheType string) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss.
func (sm *ServiceMetrics) RecordCacheMiss(cacheType string) {
	if sm.metrics == nil {
		return
	}
	sm.metrics.CacheMisses.WithLabelValues(cacheType).Inc()
}
