package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"offsetpager/internal/config"
	"offsetpager/internal/http/handlers"
	middlewarex "offsetpager/internal/http/middleware"
	"offsetpager/internal/services/data"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config      config.Cfg
	DataService *data.Service
	// Limiter enables per-client rate limiting on the API when set.
	Limiter middlewarex.Counter
}

// NewRouter creates the HTTP router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middlewarex.Instrument)
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)

	r.Get("/health", handlers.Health(deps.Config.DB.Driver))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(middlewarex.RateLimit(deps.Limiter, deps.Config.Redis.RateLimitPerMin))
		}

		r.Get("/people", handlers.ListPeople(deps.DataService, deps.Config.App.BaseURL))
	})

	return r
}
