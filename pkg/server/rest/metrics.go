package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gpxsvg",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gpxsvg",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),

		conversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gpxsvg",
			Subsystem: "convert",
			Name:      "conversions_total",
			Help:      "Total track conversions by input source",
		}, []string{"source", "status"}),

		conversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gpxsvg",
			Subsystem: "convert",
			Name:      "conversion_duration_seconds",
			Help:      "Duration of successful track conversions",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"source"}),
	}
}

// RecordConversion counts one conversion attempt, observing its duration
// when it succeeded.
func (m *Metrics) RecordConversion(source string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.conversionsTotal.WithLabelValues(source, status).Inc()
	if err == nil {
		m.conversionDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	}
}

// PromeHttpMiddleware records request count and latency per chi route
// pattern, so path parameters do not blow up label cardinality.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if pattern := routeCtx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			m.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
			m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
