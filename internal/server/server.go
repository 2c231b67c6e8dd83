// Package server envuelve http.Server con timeouts y graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"vet-records/internal/config"
	"vet-records/internal/platform/logger"
)

type Server struct {
	httpServer *http.Server
	log        logger.Logger
	cfg        *config.Config
}

func New(cfg *config.Config, log logger.Logger, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.HTTPReadTimeout,
			WriteTimeout: cfg.HTTPWriteTimeout,
			IdleTimeout:  cfg.HTTPIdleTimeout,
		},
		log: log,
		cfg: cfg,
	}
}

// Run escucha en cfg.Addr() hasta que ctx se cancele (SIGINT/SIGTERM en main)
// y entonces hace shutdown con cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve es Run sobre un listener ya abierto (tests usan ":0").
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("http server started", map[string]any{"addr": ln.Addr().String()})

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown requested", nil)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	s.log.Info("http server stopped", nil)
	return nil
}
