// Package metrics exposes the service's Prometheus instrumentation.
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
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	watchersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_watchers_active",
			Help: "Number of open snapshot subscriptions",
		},
	)

	snapshotsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_snapshots_delivered_total",
			Help: "Total result-set snapshots pushed to watchers",
		},
	)
)

// WatcherOpened records a new snapshot subscription.
func WatcherOpened() { watchersActive.Inc() }

// WatcherClosed records a cancelled snapshot subscription.
func WatcherClosed() { watchersActive.Dec() }

// SnapshotDelivered records one snapshot pushed to a watcher.
func SnapshotDelivered() { snapshotsDelivered.Inc() }

// Handler returns the /metrics scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Middleware records request counts and latency per route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		// Use the chi route pattern so person and item ids do not blow up
		// label cardinality.
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

// Flush passes through so streaming endpoints keep working when wrapped.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
