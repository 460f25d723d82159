// Package handlers provides HTTP request handlers for the Watchdog API.
package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Jib667/Watchdog/pkg/directory"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	store     *directory.Store
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(store *directory.Store, logger *zerolog.Logger, startTime time.Time) *Handlers {
	return &Handlers{
		store:     store,
		logger:    logger,
		startTime: startTime,
	}
}
