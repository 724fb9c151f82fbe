// internal/metrics/metrics.go

// Package metrics holds the Prometheus instrumentation for the discovery
// server: HTTP request metrics plus counters for filter evaluations,
// suggestion lookups and catalog reloads.
//
//	r.Use(metrics.Middleware())
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "discovery"

var (
	// RequestDuration tracks how long each HTTP request takes, by route.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// Evaluations counts pipeline runs; ResultSize records how many
	// listings each run returned.
	Evaluations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "evaluations_total",
		Help:      "Total filter pipeline evaluations.",
	})

	ResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "result_size",
		Help:      "Number of listings returned per evaluation.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 500},
	})

	// Suggestions counts suggestion lookups by outcome.
	Suggestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "lookups_total",
			Help:      "Total suggestion lookups.",
		},
		[]string{"outcome"}, // "gated" | "empty" | "hit"
	)

	CatalogReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "reloads_total",
			Help:      "Total catalog reload attempts.",
		},
		[]string{"status"}, // "success" | "failed"
	)

	CatalogListings = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "listings",
		Help:      "Number of listings in the active catalog.",
	})

	LiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "suggest",
		Name:      "live_sessions",
		Help:      "Open live suggestion websocket sessions.",
	})
)

// Registry is the private registry served on /metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	Registry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		Evaluations,
		ResultSize,
		Suggestions,
		CatalogReloads,
		CatalogListings,
		LiveSessions,
	)
}

// Middleware records duration, count and in-flight requests. Routes are
// labelled by their gin pattern so path parameters don't explode cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		RequestInFlight.Inc()
		defer RequestInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		RequestTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}

// Handler exposes the registry in Prometheus text and OpenMetrics formats.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func ObserveEvaluation(resultSize int) {
	Evaluations.Inc()
	ResultSize.Observe(float64(resultSize))
}

func RecordSuggestion(outcome string) {
	Suggestions.WithLabelValues(outcome).Inc()
}

// RecordReload is shaped to plug straight into catalog.Watcher.OnReload.
func RecordReload(err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("failed").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
}
