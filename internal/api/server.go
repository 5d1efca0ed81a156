package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/lovecontract/internal/config"
	"github.com/rs/zerolog"
)

type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

func NewHttpServer(cfg *config.Config, engine *gin.Engine, log zerolog.Logger) *HttpServer {
	return &HttpServer{cfg: cfg, engine: engine, log: log}
}

// Run starts the HTTP listener and shuts it down gracefully when ctx is cancelled.
// onShutdown runs before the listener drains, so long-lived websocket streams can be closed.
func (s *HttpServer) Run(ctx context.Context, onShutdown func()) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	if onShutdown != nil {
		onShutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
