package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/todosync/internal/config"
	"github.com/iudanet/todosync/internal/server/middleware"
	"github.com/iudanet/todosync/internal/server/storage/sqlite"
	"github.com/iudanet/todosync/internal/server/token"
	"github.com/iudanet/todosync/pkg/api"
)

const shutdownTimeout = 10 * time.Second

// Server HTTP сервер хранилища задач
type Server struct {
	logger     *slog.Logger
	storage    *sqlite.Storage
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New открывает хранилище и собирает HTTP сервер по конфигурации
func New(ctx context.Context, cfg config.Server, logger *slog.Logger, version string) (*Server, error) {
	store, err := sqlite.New(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow.Std(), logger)

	routerCfg := RouterConfig{
		Logger:  logger,
		Storage: store,
		Limiter: limiter,
		Metrics: middleware.NewMetrics("todosync"),
		Version: version,
	}
	if cfg.AuthEnabled() {
		routerCfg.Tokens = token.NewService(cfg.TokenSecret, cfg.TokenTTL.Std())
	} else {
		logger.Warn("token_secret is not set, API authentication is disabled")
	}

	return &Server{
		logger:  logger,
		storage: store,
		limiter: limiter,
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           NewRouter(routerCfg),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Run принимает соединения до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на готовом listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Close освобождает ресурсы сервера
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.storage.Close()
}

func writeJSONError(w http.ResponseWriter, code, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
