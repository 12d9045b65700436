package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Lookups by result: hit, miss, expired
	URLCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_cache_lookups_total",
			Help: "Total number of URL cache lookups",
		},
		[]string{"result"},
	)

	URLCacheSets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "url_cache_sets_total",
			Help: "Total number of URL cache insertions",
		},
	)

	// Removals by reason: capacity, sweep, expired_on_get
	URLCacheRemovals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_cache_removals_total",
			Help: "Total number of URL cache entries removed",
		},
		[]string{"reason"},
	)

	URLCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "url_cache_entries",
			Help: "Current number of entries in the URL cache",
		},
	)

	// Resolver invocations by resolver name and outcome
	URLResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_resolutions_total",
			Help: "Total number of URL resolutions",
		},
		[]string{"resolver", "outcome"},
	)

	URLResolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "url_resolve_duration_seconds",
			Help:    "Duration of resolver calls on cache miss",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resolver"},
	)

	SharedStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_shared_store_errors_total",
			Help: "Total number of shared URL store errors",
		},
		[]string{"operation"},
	)

	// API requests by endpoint
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_api_requests_total",
			Help: "Total number of URL API requests",
		},
		[]string{"endpoint"},
	)
)

// RecordLookup records a cache lookup result
func RecordLookup(result string) {
	URLCacheLookups.WithLabelValues(result).Inc()
}

// RecordSet records a cache insertion
func RecordSet() {
	URLCacheSets.Inc()
}

// RecordRemovals records removed entries for a reason
func RecordRemovals(reason string, count int) {
	if count <= 0 {
		return
	}
	URLCacheRemovals.WithLabelValues(reason).Add(float64(count))
}

// UpdateEntries sets the current entry count
func UpdateEntries(count int) {
	URLCacheEntries.Set(float64(count))
}

// RecordResolution records a resolver outcome
func RecordResolution(resolver, outcome string) {
	URLResolutions.WithLabelValues(resolver, outcome).Inc()
}

// RecordSharedStoreError records a shared store failure
func RecordSharedStoreError(operation string) {
	SharedStoreErrors.WithLabelValues(operation).Inc()
}

// RecordAPIRequest records an API request
func RecordAPIRequest(endpoint string) {
	APIRequests.WithLabelValues(endpoint).Inc()
}

// TimeResolve returns a timer function for measuring resolver latency
func TimeResolve(resolver string) func() {
	timer := prometheus.NewTimer(URLResolveDuration.WithLabelValues(resolver))
	return func() {
		timer.ObserveDuration()
	}
}
