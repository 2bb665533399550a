// Package metrics provides Prometheus metrics for the lineup recommendation service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// rosterSizeBuckets covers typical collections up to the default roster cap.
var rosterSizeBuckets = []float64{0, 1, 5, 10, 20, 30, 50, 100, 200}

// Manager manages all Prometheus metrics for the lineup service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Engine metrics
	recommendations       *prometheus.CounterVec
	recommendationLatency *prometheus.HistogramVec
	unfilledSlots         *prometheus.CounterVec
	unusedCandidates      *prometheus.HistogramVec
	rosterSize            prometheus.Histogram
	activitiesRegistered  prometheus.Gauge
	catalogHeroes         prometheus.Gauge
	workerCount           prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendations = auto.NewCounterVec(
		m.counterOpts("recommendations_total", "Total number of recommendations by activity and outcome"),
		[]string{"activity", "outcome"},
	)
	m.recommendationLatency = auto.NewHistogramVec(
		m.histogramOpts("recommendation_latency_milliseconds", "Recommendation latency in milliseconds", m.histogramBuckets),
		[]string{"activity"},
	)
	m.unfilledSlots = auto.NewCounterVec(
		m.counterOpts("unfilled_slots_total", "Total number of slots left without an eligible hero"),
		[]string{"activity"},
	)
	m.unusedCandidates = auto.NewHistogramVec(
		m.histogramOpts("unused_candidates", "Number of eligible heroes left out of a recommendation", rosterSizeBuckets),
		[]string{"activity"},
	)
	m.rosterSize = auto.NewHistogram(
		m.histogramOpts("roster_size", "Number of hero records per request", rosterSizeBuckets),
	)
	m.activitiesRegistered = auto.NewGauge(m.gaugeOpts("activities_registered", "Number of registered activity profiles"))
	m.catalogHeroes = auto.NewGauge(m.gaugeOpts("catalog_heroes", "Number of heroes in the static catalog"))
	m.workerCount = auto.NewGauge(m.gaugeOpts("worker_count", "Concurrent activity evaluations allowed per request"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component and error type"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by error type and severity"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by HTTP endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "Heap memory in use in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Current number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds",
		"GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// RecordRecommendation counts one recommendation and its latency.
func (m *Manager) RecordRecommendation(activity, outcome string, latency time.Duration) {
	if !m.enabled {
		return
	}
	m.recommendations.WithLabelValues(activity, outcome).Inc()
	m.recommendationLatency.WithLabelValues(activity).Observe(float64(latency) / float64(time.Millisecond))
}

// RecordAssignment records the shape of a successful recommendation.
func (m *Manager) RecordAssignment(activity string, unfilled, unused int) {
	if !m.enabled {
		return
	}
	if unfilled > 0 {
		m.unfilledSlots.WithLabelValues(activity).Add(float64(unfilled))
	}
	m.unusedCandidates.WithLabelValues(activity).Observe(float64(unused))
}

// RecordRosterSize observes the number of records in a request.
func (m *Manager) RecordRosterSize(size int) {
	if !m.enabled {
		return
	}
	m.rosterSize.Observe(float64(size))
}

// UpdateTables sets the registry and catalog size gauges.
func (m *Manager) UpdateTables(activities, heroes int) {
	if !m.enabled {
		return
	}
	m.activitiesRegistered.Set(float64(activities))
	m.catalogHeroes.Set(float64(heroes))
}

// UpdateWorkerCount sets the worker gauge.
func (m *Manager) UpdateWorkerCount(count int) {
	if !m.enabled {
		return
	}
	m.workerCount.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request and its duration in milliseconds.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordError records an error under component, type, and severity.
func (m *Manager) RecordError(component, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystem sets memory and goroutine gauges and observes a GC pause.
func (m *Manager) UpdateSystem(heapBytes uint64, goroutines int, lastPauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(heapBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if lastPauseMs > 0 {
		m.systemGCPauseTime.Observe(lastPauseMs)
	}
}

// RefreshInterval is how often callers should refresh system gauges.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// Package-level helpers delegate to the global manager.

// Default returns the global manager.
func Default() *Manager { return globalManager }

// RecordRecommendation counts one recommendation on the global manager.
func RecordRecommendation(activity, outcome string, latency time.Duration) {
	globalManager.RecordRecommendation(activity, outcome, latency)
}

// RecordAssignment records a recommendation's shape on the global manager.
func RecordAssignment(activity string, unfilled, unused int) {
	globalManager.RecordAssignment(activity, unfilled, unused)
}

// RecordRosterSize observes a roster size on the global manager.
func RecordRosterSize(size int) { globalManager.RecordRosterSize(size) }

// UpdateTables sets table size gauges on the global manager.
func UpdateTables(activities, heroes int) { globalManager.UpdateTables(activities, heroes) }

// UpdateWorkerCount sets the worker gauge on the global manager.
func UpdateWorkerCount(count int) { globalManager.UpdateWorkerCount(count) }

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordError records an error on the global manager.
func RecordError(component, errorType, severity string) {
	globalManager.RecordError(component, errorType, severity)
}

// RecordErrorByEndpoint records an endpoint error on the global manager.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystem sets system gauges on the global manager.
func UpdateSystem(heapBytes uint64, goroutines int, lastPauseMs float64) {
	globalManager.UpdateSystem(heapBytes, goroutines, lastPauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
