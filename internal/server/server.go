package server

import (
	"context"
	"net/http"

	"appraiser/internal/configuration"
)

// Server encapsulates the HTTP server of the application, providing controlled startup and shutdown.
type Server struct {
	server *http.Server
}

// ListenAndServe starts the HTTP server and blocks until it stops.
// After Shutdown it returns http.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, letting active requests finish
// within the deadline of ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// NewServer creates a server listening on config.Address with the routes of
// router, the configured timeouts and a limited header size.
func NewServer(config configuration.ServerConfig, router *ApiV1Router) *Server {
	s := Server{&http.Server{
		Addr:           config.Address,
		Handler:        router.Mux(),
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		MaxHeaderBytes: 1024 * 10,
	}}

	return &s
}
