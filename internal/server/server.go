package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/XiaoConstantine/checklist-go/pkg/config"
	"github.com/XiaoConstantine/checklist-go/pkg/core"
	"github.com/XiaoConstantine/checklist-go/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP transport around the tool registry.
type Server struct {
	cfg    *config.Config
	logger *logging.Logger
	http   *http.Server
}

// New builds a Server from configuration and a populated registry.
func New(cfg *config.Config, registry core.ToolRegistry, logger *logging.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.Server.Address,
			Handler: NewRouter(cfg, registry, logger),
		},
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)

	var wg conc.WaitGroup
	wg.Go(func() {
		s.logger.Info(ctx, "Listening on %s", s.cfg.Server.Address)
		err := s.http.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
		// Unblock the shutdown goroutine when the listener fails on its own.
		cancel()
	})
	wg.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown failed: %v", err)
		}
	})
	wg.Wait()

	return <-errCh
}
