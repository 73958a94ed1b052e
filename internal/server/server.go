package server

import (
	"context"
	"net"
	"net/http"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Bridge, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating bridge server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errEmptyAddress
	}

	// request contexts end when shutdown starts, so open streams let go
	baseCtx, stopRequests := context.WithCancel(context.Background())
	httpSrv := &http.Server{
		Addr:        cfg.HTTPAddress,
		Handler:     handler,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	httpSrv.RegisterOnShutdown(stopRequests)

	return &server{
		httpServer: &httpServer{
			server: httpSrv,
			logger: logger,
		},
		logger: logger,
	}, nil
}

func (s *server) Listen() error {
	return s.httpServer.listen()
}

func (s *server) Addr() string {
	return s.httpServer.addr()
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}
	ln, err := s.httpServer.start()
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()
	s.logger.Info().Str("address", s.Addr()).Msg("bridge server listening")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.httpServer.shutdown()
	err = <-serveErr
	s.logger.Info().Msg("bridge server shut down gracefully")

	return err
}
