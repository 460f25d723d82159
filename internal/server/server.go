// Package server provides the HTTP server implementation for the Watchdog API.
package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jib667/Watchdog/pkg/directory"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	store     *directory.Store
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(store *directory.Store, logger *zerolog.Logger, cfg Config) *Server {
	logger.Debug().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("path_prefix", cfg.PathPrefix).
		Msg("Creating new server instance")

	return &Server{
		store:     store,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Store returns the directory store backing the server.
func (s *Server) Store() *directory.Store {
	return s.store
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
