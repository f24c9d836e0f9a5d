package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ActiveRequestsMiddleware tracks in-flight HTTP requests.
// The increment is deferred to the first write so the resolved route pattern
// is used for both the increment and the matching decrement.
func ActiveRequestsMiddleware(meter metric.Meter) func(next http.Handler) http.Handler {
	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP server requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passThrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracker := &activeRequestTracker{
				ResponseWriter: w,
				request:        r,
				counter:        activeRequests,
			}

			next.ServeHTTP(tracker, r)

			tracker.done()
		})
	}
}

type activeRequestTracker struct {
	http.ResponseWriter
	request *http.Request
	counter metric.Int64UpDownCounter
	attrs   []attribute.KeyValue
}

func (t *activeRequestTracker) WriteHeader(statusCode int) {
	t.start()
	t.ResponseWriter.WriteHeader(statusCode)
}

func (t *activeRequestTracker) Write(b []byte) (int, error) {
	t.start()
	return t.ResponseWriter.Write(b)
}

func (t *activeRequestTracker) start() {
	if t.attrs != nil {
		return
	}
	t.attrs = []attribute.KeyValue{
		attribute.String("http.request.method", t.request.Method),
		attribute.String("http.route", RoutePattern(t.request)),
		attribute.String("server.address", t.request.Host),
	}
	t.counter.Add(t.request.Context(), 1, metric.WithAttributes(t.attrs...))
}

func (t *activeRequestTracker) done() {
	t.start()
	t.counter.Add(t.request.Context(), -1, metric.WithAttributes(t.attrs...))
}

// DurationMillisecondsMiddleware records request duration in milliseconds,
// next to otelhttp's seconds based histogram.
func DurationMillisecondsMiddleware(meter metric.Meter) func(next http.Handler) http.Handler {
	durationHistogram, err := meter.Float64Histogram(
		"http.server.request.duration.ms",
		metric.WithDescription("HTTP server request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return passThrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			durationHistogram.Record(r.Context(), float64(time.Since(start).Milliseconds()),
				metric.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("http.route", RoutePattern(r)),
					attribute.Int("http.response.status_code", ww.Status()),
					attribute.String("server.address", r.Host),
				),
			)
		})
	}
}

func passThrough(next http.Handler) http.Handler {
	return next
}
