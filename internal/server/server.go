package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"fitness_tracker/internal/config"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	cfg config.ServerConfig

	mu         sync.Mutex
	httpServer *http.Server
	closed     bool
}

const maxHeaderBytes = 1 << 20 // 1 MB

// Fallbacks used when a timeout is left at zero.
const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

func New(cfg config.ServerConfig) *Server {
	return &Server{cfg: cfg}
}

// newHTTPServer builds a configured *http.Server for the given address and handler.
func (s *Server) newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: orDefault(s.cfg.ReadHeaderTimeout, defaultReadHeaderTimeout),
		WriteTimeout:      orDefault(s.cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       orDefault(s.cfg.IdleTimeout, defaultIdleTimeout),
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// normalizeAddr ensures the provided port is a valid address (accepts "8080" or ":8080").
func normalizeAddr(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// Run starts the HTTP server on the given port and blocks until it stops.
// A graceful Shutdown makes Run return nil.
func (s *Server) Run(port string, handler http.Handler) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	hs := s.newHTTPServer(normalizeAddr(port), handler)
	s.httpServer = hs
	s.mu.Unlock()

	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
// Calling it before Run makes a later Run return immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	hs := s.httpServer
	s.mu.Unlock()

	if hs == nil {
		return nil
	}
	return hs.Shutdown(ctx)
}
