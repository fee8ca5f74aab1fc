package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/nzwalks-api/pkg/config"
	"github.com/killallgit/nzwalks-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nzwalks-api",
	Short: "NZ Walks Regions API server",
	Long: `NZ Walks Regions API - manage the regions of New Zealand walking tracks

Regions are identified by a UUID and carry a short code (for example NZ-WGN),
a display name and an optional image URL.

Features:
  • List, fetch, create, replace and delete regions over HTTP
  • SQLite storage by default, PostgreSQL or MySQL via a DSN
  • Swagger UI at /docs`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs; overrides config")
}

// loadConfig loads and validates the configuration.
// It is called only by commands that need it.
func loadConfig() (*config.Config, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger installs the global logger, letting flags override config
func setupLogger(cmd *cobra.Command, cfg config.LoggingConfig) zerolog.Logger {
	opts := logger.Options{
		Level:  cfg.Level,
		JSON:   cfg.Format != "console",
		Output: cmd.ErrOrStderr(),
	}

	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		opts.Level = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("json-logs"); flag != nil && flag.Changed {
		opts.JSON, _ = cmd.Flags().GetBool("json-logs")
	}

	return logger.Setup(opts)
}
