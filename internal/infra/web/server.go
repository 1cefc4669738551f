package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server exposes the diagnostic surface of the controller process: a health
// probe and the Prometheus metrics endpoint.
type Server struct {
	port   int
	log    *zerolog.Logger
	server *http.Server
}

func NewServer(port int, logger *zerolog.Logger) *Server {
	return &Server{port: port, log: logger}
}

func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	r.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: r,
	}

	s.log.Info().Int("port", s.port).Msg("debug server listening")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
