package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterConfig holds the HTTP-level settings of the router.
type RouterConfig struct {
	// AllowedOrigins are the browser origins granted CORS access.
	AllowedOrigins []string
	// RateLimitPerMinute is the per-IP request budget; zero disables limiting.
	RateLimitPerMinute int
}

// NewRouter builds and returns the Chi router with all routes configured.
// redis may be nil when caching is disabled.
func NewRouter(handlers *Handlers, cfg RouterConfig, db Pinger, redis Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(db, redis, log))

		r.Route("/destinations", func(r chi.Router) {
			r.Get("/", handlers.ListDestinations)
			r.Post("/", handlers.CreateDestination)
			r.Get("/{id}", handlers.GetDestination)
		})

		r.Route("/itineraries", func(r chi.Router) {
			r.Get("/", handlers.ListItineraries)
			r.Post("/", handlers.CreateItinerary)
			r.Get("/{id}", handlers.GetItinerary)
			r.Delete("/{id}", handlers.DeleteItinerary)
		})
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
