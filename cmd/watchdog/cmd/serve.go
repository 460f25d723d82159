package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Jib667/Watchdog/internal/server"
	"github.com/Jib667/Watchdog/pkg/directory"
	"github.com/Jib667/Watchdog/pkg/logging"
)

// serveCmd starts the REST API server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the congressional directory REST API server",
	Long: `Start a REST API server for the congressional directory.

The datasets are read from the data directory, reconciled into an
in-memory directory snapshot, and served over HTTP. A reload endpoint
rebuilds the snapshot from disk and swaps it in atomically, so lookups
never observe partial state.

Features:
  - Member, committee, and delegation lookup endpoints
  - CORS support for web applications
  - Request logging with request IDs and panic recovery
  - Graceful shutdown with connection draining
  - Health and readiness checks`,
	Example: `  # Start on default port 8080
  watchdog serve

  # Start on a custom port with a different dataset directory
  watchdog serve --port 3000 --data-dir /var/lib/watchdog/congress_data

  # Enable CORS for specific origins
  watchdog serve --cors --cors-origins "https://example.com"`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server configuration flags
	serveCmd.Flags().Int("port", 8080, "Server port")
	serveCmd.Flags().String("host", "localhost", "Bind address")
	serveCmd.Flags().String("prefix", "/api/v1", "API path prefix")
	serveCmd.Flags().String("names-file", "", "Extra committee display-name overrides (YAML)")

	// CORS flags
	serveCmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	serveCmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	// Timeout flags
	serveCmd.Flags().Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", 10*time.Second, "HTTP write timeout")
	serveCmd.Flags().Duration("idle-timeout", 120*time.Second, "HTTP idle timeout")
}

// runServe loads the directory and starts the API server.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg := parseServerConfig(cmd)
	logger := logging.Default()

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("prefix", cfg.PathPrefix).
		Str("data_dir", dataDir()).
		Msg("Starting API server")

	// Build the initial directory snapshot
	auth, err := committeeAuthority(mustGetString(cmd, "names-file"))
	if err != nil {
		return err
	}
	store := directory.NewStore(directory.WithPath(dataDir()), directory.WithAuthority(auth))
	if err := store.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading directory: %w", err)
	}

	srv := server.New(store, logger, cfg)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Pass cmd.Context() which has signal handling from Execute
	return startWithGracefulShutdown(cmd.Context(), httpServer, logger)
}

// parseServerConfig parses command flags into server configuration.
func parseServerConfig(cmd *cobra.Command) server.Config {
	cfg := server.DefaultConfig()
	cfg.Port = mustGetInt(cmd, "port")
	cfg.Host = mustGetString(cmd, "host")
	cfg.PathPrefix = mustGetString(cmd, "prefix")
	cfg.CORSEnabled = mustGetBool(cmd, "cors")
	cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
	cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")

	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}

	// Override with environment variables
	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		if p, err := parsePort(envPort); err == nil {
			cfg.Port = p
		}
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		cfg.Host = envHost
	}

	return cfg
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown starts the HTTP server and shuts it down
// gracefully when the context is cancelled.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Msg("HTTP server listening")

		fmt.Printf("API server listening on %s\n", httpServer.Addr)
		fmt.Println("Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	// Wait for server error or context cancellation (SIGINT/SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")

		// Fresh shutdown context, the parent is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}
