package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airline-marketplace/authority/internal/api"
	"airline-marketplace/authority/internal/db"
	"airline-marketplace/authority/internal/logging"
	"airline-marketplace/authority/internal/metrics"
	"airline-marketplace/authority/internal/middleware"
)

// RegisterRoutes builds the chi router with global middleware and all route
// groups.
func RegisterRoutes(deps *api.Dependencies, metricsReg *metrics.MetricsRegistry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB))
	r.Handle("/metrics", promhttp.Handler())

	RegisterAPIRoutes(r, deps)

	return r
}
