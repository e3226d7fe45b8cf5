package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mssp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mssp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mssp",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Responder metrics
	securityQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mssp",
			Subsystem: "security",
			Name:      "queries_total",
			Help:      "Total number of telemetry queries by resolved view",
		},
		[]string{"view"},
	)

	securityActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mssp",
			Subsystem: "security",
			Name:      "actions_total",
			Help:      "Total number of action requests by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	datasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mssp",
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Number of records loaded into the telemetry dataset",
		},
		[]string{"collection"},
	)

	setupSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mssp",
			Subsystem: "setup",
			Name:      "submissions_total",
			Help:      "Total number of organization setup submissions by outcome",
		},
		[]string{"outcome"},
	)

	rateLimitersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mssp",
			Subsystem: "ratelimit",
			Name:      "limiters_active",
			Help:      "Number of per-client rate limiters currently tracked",
		},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Route pattern keeps label cardinality bounded
		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordQuery records a telemetry query for the resolved view
func RecordQuery(view string) {
	securityQueriesTotal.WithLabelValues(view).Inc()
}

// RecordAction records an action request and its outcome
func RecordAction(action, outcome string) {
	securityActionsTotal.WithLabelValues(action, outcome).Inc()
}

// SetDatasetRecords sets the gauge for a dataset collection size
func SetDatasetRecords(collection string, count int) {
	datasetRecords.WithLabelValues(collection).Set(float64(count))
}

// RecordSetupSubmission records an organization setup submission
func RecordSetupSubmission(outcome string) {
	setupSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// SetActiveRateLimiters sets the gauge for tracked rate limiters
func SetActiveRateLimiters(count int) {
	rateLimitersActive.Set(float64(count))
}
