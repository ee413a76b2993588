// Package metrics instruments the HTTP surface and the marketplace client
// with Prometheus collectors, exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "usedcars",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usedcars",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	marketplaceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usedcars",
			Name:      "marketplace_requests_total",
			Help:      "Total number of marketplace calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(marketplaceRequestsTotal)
}

// Middleware records duration and count for every handled request, labeled
// by the matched route pattern so listing ids do not blow up cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := normalizePath(c.FullPath())
		method := c.Request.Method

		httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	}
}

// ObserveMarketplaceRequest records one outbound marketplace call.
func ObserveMarketplaceRequest(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	marketplaceRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// Handler exposes the Prometheus registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// normalizePath collapses unmatched routes so 404 scans cannot create
// unbounded label values.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}
