// Package server собирает HTTP сервер: маршруты, middleware, зависимости.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tonesculpt/tonesculpt/internal/auth"
	"github.com/tonesculpt/tonesculpt/internal/gemini"
	"github.com/tonesculpt/tonesculpt/internal/server/config"
	"github.com/tonesculpt/tonesculpt/internal/server/handlers"
	"github.com/tonesculpt/tonesculpt/internal/server/middleware"
	"github.com/tonesculpt/tonesculpt/internal/server/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// Server представляет собранный HTTP сервер со всеми зависимостями
type Server struct {
	logger  *slog.Logger
	httpSrv *http.Server
	storage *sqlite.Storage
}

// New создает сервер: открывает хранилище, строит обработчики и маршруты
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.AuthSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	authService := auth.NewService(logger, store)

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey,
		gemini.WithBaseURL(cfg.GeminiBaseURL),
		gemini.WithModel(cfg.GeminiModel),
		gemini.WithTimeout(cfg.GeminiTimeout),
	)

	authHandler := handlers.NewAuthHandler(logger, authService, jwtConfig)
	aiHandler := handlers.NewAIHandler(logger, geminiClient)
	healthHandler := handlers.NewHealthHandler(logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me",
		middleware.AuthMiddleware(logger, jwtConfig)(http.HandlerFunc(authHandler.Me)))
	mux.HandleFunc("POST /api/detect_tone", aiHandler.DetectTone)
	mux.HandleFunc("POST /api/enhance_text", aiHandler.EnhanceText)
	mux.HandleFunc("GET /health", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	httpSrv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger:  logger,
		httpSrv: httpSrv,
		storage: store,
	}, nil
}

// Run запускает сервер и блокируется до отмены ctx, затем выполняет
// graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", slog.String("address", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	return nil
}
