package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourorg/starchart/internal/observability/metrics"
	"github.com/yourorg/starchart/internal/service"
)

// RouterDeps carries everything the router needs wired in.
type RouterDeps struct {
	Catalog        *service.CatalogService
	Logger         *slog.Logger
	AllowedOrigins []string
	// Ready reports backend readiness for /readyz. Nil means always ready
	// (the in-memory backend has nothing to wait for).
	Ready func(ctx context.Context) error
}

// NewRouter assembles the HTTP surface: the /api routes, health probes, and
// the Prometheus endpoint.
func NewRouter(deps RouterDeps) http.Handler {
	constellations := NewConstellationsHandler(deps.Catalog, deps.Logger)
	favorites := NewFavoritesHandler(deps.Catalog, deps.Logger)
	share := NewShareHandler(deps.Catalog, deps.Logger)
	wheel := NewWheelHandler(deps.Catalog, deps.Logger)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Authorization"},
	}))
	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/constellations", constellations.List)
		r.Get("/constellations/{id}", constellations.Get)
		r.Get("/favorites", favorites.List)
		r.Post("/favorites", favorites.Toggle)
		r.Post("/share", share.Share)
		r.Get("/wheel", wheel.Get)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ready != nil {
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ready(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("store not ready"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	return r
}

type requestIDKey struct{}

// requestIDMiddleware attaches a request ID to the context and response
// headers and logs each completed request.
func requestIDMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.NewString()
			w.Header().Set("X-Request-ID", reqID)

			ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
			start := time.Now()

			next.ServeHTTP(w, r.WithContext(ctx))

			log.Info("request completed",
				slog.String("request_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration_ms", time.Since(start)),
			)
		})
	}
}
