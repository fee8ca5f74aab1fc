package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/nzwalks-api/api"
	"github.com/killallgit/nzwalks-api/api/types"
	"github.com/killallgit/nzwalks-api/internal/database"
	"github.com/killallgit/nzwalks-api/internal/services/regions"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the NZ Walks Regions API server with the configured settings.

The server opens the configured database, creates the regions table if it
is missing and serves the regions endpoints until interrupted.

Example:
  nzwalks-api serve
  nzwalks-api serve --port 9090
  nzwalks-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load config (lazy loading - only when serve command is run)
	appConfig, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, appConfig.Logging)

	// Flags win over config values
	if serverHost != "" {
		appConfig.Server.Host = serverHost
	}
	if serverPort != 0 {
		appConfig.Server.Port = serverPort
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := database.Open(ctx, appConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close database")
		}
	}()

	if err := regions.Migrate(ctx, conn); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo, err := regions.NewRepositoryFor(conn)
	if err != nil {
		return err
	}

	server := api.NewServer(appConfig, &types.Dependencies{
		DB:               conn,
		RegionRepository: repo,
		Logger:           logger,
		Build:            buildInfo(),
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		serverErr <- server.Start()
	}()

	logger.Info().
		Str("addr", server.Addr()).
		Str("driver", appConfig.Database.Driver).
		Str("version", Version).
		Msg("Server is ready to handle requests")

	// Wait for interrupt signal or server error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("Server stopped unexpectedly")
			return err
		}
	}

	// Create a context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	logger.Info().Msg("Server gracefully stopped")
	return nil
}
