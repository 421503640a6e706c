package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dbtbridge/dbtbridge/internal/config"
	"github.com/dbtbridge/dbtbridge/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wires the introspection handler into an HTTP server bound to the
// configured address.
func NewServer(h *Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	log.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(h.Init(), cfg, log),
		logger:     log,
	}, nil
}

// RunServer blocks until a termination signal arrives, then shuts the server
// down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
