// Package metrics provides Prometheus metrics for the squad draft service.
package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Draft outcome labels.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusError    = "error"
)

// Refresh outcome labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Manager manages all Prometheus metrics for the draft service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Draft Metrics
	draftsTotal          *prometheus.CounterVec
	draftLatency         *prometheus.HistogramVec
	squadSize            *prometheus.GaugeVec
	squadRemainingBudget *prometheus.GaugeVec
	squadShortfall       *prometheus.GaugeVec
	draftErrors          *prometheus.CounterVec

	// Pool Metrics
	poolPlayers         *prometheus.GaugeVec
	poolRefreshTotal    *prometheus.CounterVec
	poolRefreshLatency  prometheus.Observer
	poolLastRefreshUnix prometheus.Gauge
	providerRequests    *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "squadraft",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return promauto.With(m.registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	m.draftsTotal = m.counterVec("drafts_total",
		"Total number of draft runs by strategy and outcome", "strategy", "status")
	m.draftLatency = m.histogramVec("draft_latency_milliseconds",
		"Draft run latency in milliseconds", "strategy")
	m.squadSize = m.gaugeVec("squad_size",
		"Number of players in the last squad per strategy", "strategy")
	m.squadRemainingBudget = m.gaugeVec("squad_remaining_budget",
		"Budget left after the last draft per strategy", "strategy")
	m.squadShortfall = m.gaugeVec("squad_shortfall",
		"Unfilled slots of the last draft per strategy and position", "strategy", "position")
	m.draftErrors = m.counterVec("draft_errors_total",
		"Total number of rejected draft requests by reason", "reason")

	m.poolPlayers = m.gaugeVec("pool_players",
		"Players in the loaded pool by position", "position")
	m.poolRefreshTotal = m.counterVec("pool_refresh_total",
		"Total number of pool refreshes by source and result", "source", "result")
	m.poolRefreshLatency = m.histogramVec("pool_refresh_latency_milliseconds",
		"Pool refresh latency in milliseconds").WithLabelValues()
	m.poolLastRefreshUnix = m.gauge("pool_last_refresh_unix",
		"Unix timestamp of the last successful pool refresh")
	m.providerRequests = m.counterVec("provider_requests_total",
		"Requests sent to the remote player provider by status code", "status_code")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", "endpoint", "method", "status_code")

	m.errorRateByComponent = m.counterVec("errors_by_component_total",
		"Total number of errors by component", "component", "error_type")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "Heap memory in use in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// RecordDraft records the outcome of one draft run.
func (m *Manager) RecordDraft(strategy, status string, latencyMs float64, size int, remaining float64) {
	m.draftsTotal.WithLabelValues(strategy, status).Inc()
	m.draftLatency.WithLabelValues(strategy).Observe(latencyMs)
	m.squadSize.WithLabelValues(strategy).Set(float64(size))
	m.squadRemainingBudget.WithLabelValues(strategy).Set(remaining)
}

// UpdateShortfall sets unfilled slots for a strategy and position.
func (m *Manager) UpdateShortfall(strategy, position string, missing int) {
	m.squadShortfall.WithLabelValues(strategy, position).Set(float64(missing))
}

// RecordDraftError counts a rejected draft.
func (m *Manager) RecordDraftError(reason string) {
	m.draftErrors.WithLabelValues(reason).Inc()
}

// UpdatePoolPlayers sets the per-position pool gauge.
func (m *Manager) UpdatePoolPlayers(position string, count int) {
	m.poolPlayers.WithLabelValues(position).Set(float64(count))
}

// RecordPoolRefresh records a pool refresh attempt.
func (m *Manager) RecordPoolRefresh(source, result string, latencyMs float64, unix int64) {
	m.poolRefreshTotal.WithLabelValues(source, result).Inc()
	m.poolRefreshLatency.Observe(latencyMs)
	if result == ResultSuccess {
		m.poolLastRefreshUnix.Set(float64(unix))
	}
}

// RecordProviderRequest counts a remote provider call.
func (m *Manager) RecordProviderRequest(statusCode string) {
	m.providerRequests.WithLabelValues(statusCode).Inc()
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMetrics samples memory and goroutine counts.
func (m *Manager) UpdateSystemMetrics() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.systemMemoryUsage.Set(float64(ms.HeapInuse))
	m.systemGoroutineCount.Set(float64(runtime.NumGoroutine()))
}

// Global helpers backed by the default manager.

// RecordDraft records a draft run on the global manager.
func RecordDraft(strategy, status string, latencyMs float64, size int, remaining float64) {
	globalManager.RecordDraft(strategy, status, latencyMs, size, remaining)
}

// UpdateShortfall sets unfilled slots on the global manager.
func UpdateShortfall(strategy, position string, missing int) {
	globalManager.UpdateShortfall(strategy, position, missing)
}

// RecordDraftError counts a rejected draft on the global manager.
func RecordDraftError(reason string) {
	globalManager.RecordDraftError(reason)
}

// UpdatePoolPlayers sets the pool gauge on the global manager.
func UpdatePoolPlayers(position string, count int) {
	globalManager.UpdatePoolPlayers(position, count)
}

// RecordPoolRefresh records a refresh on the global manager.
func RecordPoolRefresh(source, result string, latencyMs float64, unix int64) {
	globalManager.RecordPoolRefresh(source, result, latencyMs, unix)
}

// RecordProviderRequest counts a provider call on the global manager.
func RecordProviderRequest(statusCode string) {
	globalManager.RecordProviderRequest(statusCode)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByComponent records a component error on the global manager.
func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

// RecordErrorByEndpoint records an endpoint error on the global manager.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystemMetrics samples runtime stats on the global manager.
func UpdateSystemMetrics() {
	globalManager.UpdateSystemMetrics()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
