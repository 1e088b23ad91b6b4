package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/todosync/internal/server/handlers"
	"github.com/iudanet/todosync/internal/server/middleware"
	"github.com/iudanet/todosync/internal/server/storage"
	"github.com/iudanet/todosync/pkg/api"
)

const (
	healthPath  = "/api/v1/health"
	metricsPath = "/metrics"
)

// RouterConfig зависимости HTTP роутера
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.TodoStorage
	Limiter *middleware.RateLimiter
	Metrics *middleware.Metrics
	// Tokens nil отключает проверку bearer токена
	Tokens  middleware.TokenValidator
	Version string
}

// NewRouter собирает chi роутер API
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, healthPath, metricsPath))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
		r.Method(http.MethodGet, metricsPath, cfg.Metrics.Handler())
	}

	health := handlers.NewHealthHandler(cfg.Logger, cfg.Storage, cfg.Version)
	r.Get(healthPath, health.Health)

	todos := handlers.NewTodoHandler(cfg.Logger, cfg.Storage)
	r.Route("/api/v1/todos", func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(cfg.Limiter.Middleware)
		}
		if cfg.Tokens != nil {
			r.Use(middleware.Auth(cfg.Logger, cfg.Tokens))
		}

		r.Get("/", todos.List)
		r.Post("/", todos.Create)
		r.Put("/{id}/status", todos.UpdateStatus)
		r.Delete("/{id}", todos.Delete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, api.ErrCodeNotFound, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, api.ErrCodeValidation, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
