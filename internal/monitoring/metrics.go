// Package monitoring exposes Prometheus metrics for the service.
package monitoring

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
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textforge_http_requests_total",
			Help: "HTTP requests processed, by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textforge_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	textOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textforge_text_operations_total",
			Help: "Summarize/paraphrase operations, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	inputSentences = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textforge_input_sentences",
			Help:    "Sentence count of processed inputs, by kind.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"kind"},
	)
)

// Handler returns the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMetricsMiddleware records request counts and latency. The chi route
// pattern is used as the route label to keep cardinality bounded.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// RecordTextOperation records a summarize/paraphrase outcome.
func RecordTextOperation(kind, outcome string, sentences int) {
	textOpsTotal.WithLabelValues(kind, outcome).Inc()
	if sentences > 0 {
		inputSentences.WithLabelValues(kind).Observe(float64(sentences))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
