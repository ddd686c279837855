// Package metrics provides Prometheus metrics for the nationals archive
// pipeline and dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline metrics - one scrape run per dataset rebuild
	pagesFetched   prometheus.Counter
	pageFetchFails prometheus.Counter
	slicesSkipped  prometheus.Counter
	rowsKept       prometheus.Counter
	rowsDropped    prometheus.Counter
	scrapeDuration prometheus.Histogram

	// Dataset metrics - state of the loaded artifact
	datasetRows  prometheus.Gauge
	datasetTeams prometheus.Gauge
	datasetYears prometheus.Gauge

	// Query metrics
	queryLatency prometheus.Histogram
	viewsServed  *prometheus.CounterVec

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorsByComponent *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "nationals",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.pagesFetched = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scrape_pages_fetched_total",
		Help: "Total archive pages fetched successfully.",
	})
	m.pageFetchFails = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scrape_page_fetch_failures_total",
		Help: "Total archive page fetches that failed.",
	})
	m.slicesSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scrape_slices_skipped_total",
		Help: "Total year/division slices skipped due to structural mismatches or cleaning errors.",
	})
	m.rowsKept = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scrape_rows_kept_total",
		Help: "Total raw rows that became dataset records.",
	})
	m.rowsDropped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "scrape_rows_dropped_total",
		Help: "Total raw rows dropped during cleaning.",
	})
	m.scrapeDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "scrape_year_duration_ms",
		Help:    "Duration of fetching and cleaning one year, in milliseconds.",
		Buckets: m.histogramBuckets,
	})

	m.datasetRows = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_rows",
		Help: "Number of records in the loaded dataset.",
	})
	m.datasetTeams = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_teams",
		Help: "Number of distinct teams in the loaded dataset.",
	})
	m.datasetYears = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_years",
		Help: "Number of distinct years in the loaded dataset.",
	})

	m.queryLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "query_latency_ms",
		Help:    "Latency of dataset query/aggregation calls, in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.viewsServed = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "views_served_total",
		Help: "Total dashboard views computed, by view kind.",
	}, []string{"view"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "Total HTTP requests, by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByComponent = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "errors_total",
		Help: "Total errors, by component and kind.",
	}, []string{"component", "kind"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_memory_bytes",
		Help: "Current allocated heap memory in bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "system_goroutines",
		Help: "Current number of goroutines.",
	})
	m.systemGCPauseTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "system_gc_pause_ms",
		Help:    "Average GC pause time in milliseconds.",
		Buckets: m.histogramBuckets,
	})
}

// Package-level helpers that delegate to the global manager.

// RecordPageFetched increments the fetched-pages counter.
func RecordPageFetched() {
	globalManager.pagesFetched.Inc()
}

// RecordPageFetchFailure increments the failed-fetch counter.
func RecordPageFetchFailure() {
	globalManager.pageFetchFails.Inc()
}

// RecordSliceSkipped increments the skipped-slices counter.
func RecordSliceSkipped() {
	globalManager.slicesSkipped.Inc()
}

// AddRowsKept adds to the kept-rows counter.
func AddRowsKept(n int) {
	globalManager.rowsKept.Add(float64(n))
}

// AddRowsDropped adds to the dropped-rows counter.
func AddRowsDropped(n int) {
	globalManager.rowsDropped.Add(float64(n))
}

// RecordScrapeYearDuration records how long one year took, in milliseconds.
func RecordScrapeYearDuration(ms float64) {
	globalManager.scrapeDuration.Observe(ms)
}

// UpdateDatasetRows sets the loaded-dataset row gauge.
func UpdateDatasetRows(n int) {
	globalManager.datasetRows.Set(float64(n))
}

// UpdateDatasetTeams sets the distinct-team gauge.
func UpdateDatasetTeams(n int) {
	globalManager.datasetTeams.Set(float64(n))
}

// UpdateDatasetYears sets the distinct-year gauge.
func UpdateDatasetYears(n int) {
	globalManager.datasetYears.Set(float64(n))
}

// RecordQueryLatency records one query/aggregation call, in milliseconds.
func RecordQueryLatency(ms float64) {
	globalManager.queryLatency.Observe(ms)
}

// RecordViewServed counts one computed view by kind (rankings, summary, spirit).
func RecordViewServed(view string) {
	globalManager.viewsServed.WithLabelValues(view).Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// RecordError counts one error by component and kind.
func RecordError(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

// UpdateSystemMemoryUsage sets the allocated-heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}

// RecordSystemGCPauseTime records the average GC pause in milliseconds.
func RecordSystemGCPauseTime(ms float64) {
	globalManager.systemGCPauseTime.Observe(ms)
}

// GetRegistry returns the custom registry for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
