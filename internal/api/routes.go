package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/years/{year}
//	GET /api/v1/months/{year}/{month}
//	GET /api/v1/holidays/{year}
//	GET /api/v1/holidays/{year}/{month}
//	GET /api/v1/weekday/{date}
func SetupRoutes(handlers *Handlers, cfg config.ServerConfig, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(logger))
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Rate limiting middleware using httprate
	if cfg.RateLimit > 0 {
		router.Use(httprate.LimitByIP(cfg.RateLimit, time.Second))
	}

	router.NotFound(handlers.NotFound)
	router.Get("/health", handlers.HealthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/years/{year}", handlers.GetYear)
		r.Get("/months/{year}/{month}", handlers.GetMonth)
		r.Route("/holidays/{year}", func(r chi.Router) {
			r.Get("/", handlers.GetYearHolidays)
			r.Get("/{month}", handlers.GetMonthHolidays)
		})
		r.Get("/weekday/{date}", handlers.GetWeekday)
	})

	return router
}
