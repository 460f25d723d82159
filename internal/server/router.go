package server

import (
	"net/http"
	"strings"

	"github.com/Jib667/Watchdog/internal/server/handlers"
	"github.com/Jib667/Watchdog/internal/server/middleware"
	"github.com/Jib667/Watchdog/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	// Create handlers instance
	h := handlers.New(s.store, s.logger, s.startTime)

	// Register routes
	s.registerRoutes(mux, h)

	// Apply middleware chain
	handler := s.applyMiddleware(mux)

	return handler
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Representative endpoints
	mux.HandleFunc(prefix+"/representatives", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleListRepresentatives(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/representatives/lookup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleLookupRepresentative(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Senator endpoints
	mux.HandleFunc(prefix+"/senators", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleListSenators(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/senators/lookup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleLookupSenators(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Member endpoints
	mux.HandleFunc(prefix+"/members/", func(w http.ResponseWriter, r *http.Request) {
		congressID := extractPathParam(r.URL.Path, prefix+"/members/")
		if congressID != "" && r.Method == http.MethodGet {
			h.HandleGetMember(w, r, congressID)
			return
		}
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		response.NotFound(w, "Member ID required", "")
	})

	// Committee endpoints
	mux.HandleFunc(prefix+"/committees", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleListCommittees(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/committees/", func(w http.ResponseWriter, r *http.Request) {
		code := extractPathParam(r.URL.Path, prefix+"/committees/")
		if code != "" && r.Method == http.MethodGet {
			h.HandleGetCommittee(w, r, code)
			return
		}
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		response.NotFound(w, "Committee code required", "")
	})

	// Delegation endpoint
	mux.HandleFunc(prefix+"/delegation", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleDelegation(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Admin endpoints
	mux.HandleFunc(prefix+"/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleStats(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/admin/reload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleReload(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Request IDs, logging, and recovery (always enabled)
	handler = middleware.RequestID()(handler)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// extractPathParam extracts path parameter from URL.
func extractPathParam(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	parts := strings.Split(trimmed, "/")
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}
