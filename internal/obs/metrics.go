package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cobradash_sync_runs_total",
		Help: "Sync operations by feed and outcome.",
	}, []string{"feed", "outcome"})

	RecordsNormalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cobradash_records_normalized_total",
		Help: "Canonical records produced per feed.",
	}, []string{"feed"})

	RecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cobradash_records_dropped_total",
		Help: "Raw records rejected during normalization per feed.",
	}, []string{"feed"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cobradash_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Duration records request latency against the chi route pattern, so
// parameterized paths don't explode label cardinality.
func Duration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		httpDuration.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
