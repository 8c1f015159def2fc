package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "user-service/internal/adapter/gin/handler"
	"user-service/internal/adapter/gin/middleware"
	"user-service/internal/adapter/gin/router"
	"user-service/internal/config"
)

// Server wraps the HTTP server serving the Gin router.
type Server struct {
	http *http.Server
	log  *zap.Logger
}

// New builds the HTTP server around the configured router.
func New(cfg *config.Config, l *zap.Logger, h *ginhandler.UserHandler, rl *middleware.RateLimiter) *Server {
	engine := router.SetupRouter(h, rl, l)

	return &Server{
		http: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           engine,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: l,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
