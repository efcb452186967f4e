// Package server exposes the HTTP API: question solving, registration and
// login, and per-user history.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps the http.Server with sane timeouts.
type Server struct {
	srv *http.Server
	log *zap.Logger
}

// New builds a Server listening on addr and serving the handler's routes.
func New(addr string, h *Handler, log *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
			// Uploads and model calls dominate request time. The write
			// timeout must outlast the slowest downstream call.
			ReadTimeout:  2 * time.Minute,
			WriteTimeout: 3 * time.Minute,
			IdleTimeout:  time.Minute,
		},
		log: log,
	}
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("http server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
