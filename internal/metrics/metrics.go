package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "withme"

var (
	ideasGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ideas_generated_total",
		Help:      "Activity ideas generated, by category.",
	}, []string{"category"})

	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "idea_generation_duration_seconds",
		Help:      "Time spent generating a batch of activity ideas, including lookups.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	})

	keywordCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keyword_cache_requests_total",
		Help:      "Keyword cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(ideasGenerated, generationDuration, keywordCacheRequests, httpRequests, httpDuration)
}

// Keyword cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordIdeasGenerated counts n ideas of the given category.
func RecordIdeasGenerated(category string, n int) {
	if n <= 0 {
		return
	}
	ideasGenerated.WithLabelValues(category).Add(float64(n))
}

// ObserveGeneration records how long one generation request took.
func ObserveGeneration(d time.Duration) {
	generationDuration.Observe(d.Seconds())
}

// RecordKeywordCache counts a keyword cache lookup.
func RecordKeywordCache(result string) {
	keywordCacheRequests.WithLabelValues(result).Inc()
}

// RecordHTTPRequest counts a finished HTTP request.
func RecordHTTPRequest(method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
