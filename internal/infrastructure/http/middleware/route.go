package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RoutePattern returns the chi route pattern matched for r, or the raw path
// when routing has not resolved one (yet).
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// HTTPRouteContext publishes the resolved route pattern once chi has matched
// the request. It tags the context for logs, the otelhttp labeler for the
// server metrics, and the server span's name and attributes.
// Register it with chi's With or inside a route group so the pattern is resolved.
func HTTPRouteContext() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pattern := RoutePattern(r)
			route := attribute.String("http.route", pattern)

			if labeler, ok := otelhttp.LabelerFromContext(r.Context()); ok {
				labeler.Add(route)
			}

			span := trace.SpanFromContext(r.Context())
			span.SetName(r.Method + " " + pattern)
			span.SetAttributes(route)

			ctx := telemetry.WithHTTPRoute(r.Context(), pattern)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
