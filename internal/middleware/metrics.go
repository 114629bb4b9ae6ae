package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsConverted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_converted_total",
			Help: "Total number of leads converted to deals",
		},
	)

	clientsConverted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clients_converted_total",
			Help: "Total number of leads converted to clients",
		},
	)

	dealsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deals_completed_total",
			Help: "Total number of deals moved to completed",
		},
	)

	paymentsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"status"},
	)
)

// Metrics observes every request. Uses the route template, not the raw URL,
// to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordLeadConverted()        { leadsConverted.Inc() }
func RecordClientConverted()      { clientsConverted.Inc() }
func RecordDealCompleted()        { dealsCompleted.Inc() }
func RecordPayment(status string) { paymentsRecorded.WithLabelValues(status).Inc() }
