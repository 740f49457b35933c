// Package metrics provides Prometheus instrumentation for Laziz.
//
// It pre-defines the HTTP metrics every request passes through plus the
// domain counters the kitchen-side dashboard watches: menu cache hit rate,
// Mongo query latency, image uploads.
//
// Wire it up once in internal/server:
//
//	r.Use(metrics.Middleware())
//	r.HandleFunc("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laziz",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laziz",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laziz",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// MongoQueryDuration tracks document-store operation latency.
	MongoQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laziz",
			Subsystem: "mongo",
			Name:      "query_duration_seconds",
			Help:      "Duration of MongoDB operations in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"collection", "operation"},
	)

	// MenuCacheHits / MenuCacheMisses track how often the composed menu is
	// served straight from Redis.
	MenuCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "laziz",
		Subsystem: "menu",
		Name:      "cache_hits_total",
		Help:      "Menu payloads served from the Redis cache.",
	})
	MenuCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "laziz",
		Subsystem: "menu",
		Name:      "cache_misses_total",
		Help:      "Menu payloads composed from MongoDB on a cache miss.",
	})

	// ImageUploads counts admin image uploads by outcome.
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laziz",
			Subsystem: "images",
			Name:      "uploads_total",
			Help:      "Total image uploads.",
		},
		[]string{"status"}, // "success" | "rejected" | "failed"
	)
)

// DefaultRegistry is the Prometheus registry used by Laziz.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		MongoQueryDuration,
		MenuCacheHits,
		MenuCacheMisses,
		ImageUploads,
	)
}

// MustRegister adds custom collectors to the Laziz registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // raw path; the API surface is small and fixed

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rr.status)

			RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page. Mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// ObserveMongo records a document-store operation duration:
//
//	defer metrics.ObserveMongo("products", "find", time.Now())
func ObserveMongo(collection, operation string, start time.Time) {
	MongoQueryDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}
