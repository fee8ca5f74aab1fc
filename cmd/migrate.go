package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/nzwalks-api/internal/database"
	"github.com/killallgit/nzwalks-api/internal/services/regions"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the NZ Walks Regions API.

This command provides subcommands to create the regions schema and to
check whether it exists in the configured database.

Available subcommands:
  up      - Create or update the regions table
  status  - Show whether the regions table exists and how many rows it holds`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the regions schema",
	Long: `Apply the regions schema to the configured database.

Running it against an up to date database changes nothing.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the regions schema.

This command reports the configured driver, whether the regions
table exists and how many regions it holds.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	appConfig, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, appConfig.Logging)
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would apply the regions schema using the %s driver\n", appConfig.Database.Driver)
		return nil
	}

	conn, err := database.Open(cmd.Context(), appConfig.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := regions.Migrate(cmd.Context(), conn); err != nil {
		return err
	}

	logger.Info().Str("driver", appConfig.Database.Driver).Msg("Migrations applied")
	fmt.Fprintln(out, "Regions schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	appConfig, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cmd, appConfig.Logging)

	conn, err := database.Open(cmd.Context(), appConfig.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	status, err := regions.Status(cmd.Context(), conn)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Driver:        %s\n", appConfig.Database.Driver)
	if !status.TableExists {
		fmt.Fprintln(out, "Regions table: missing (run 'migrate up')")
		return nil
	}
	fmt.Fprintln(out, "Regions table: present")
	fmt.Fprintf(out, "Regions:       %d\n", status.Rows)
	return nil
}
