package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Migrate flags
	migrateDebug bool
	migrateReset bool
)

// migrateCmd creates or updates the tables of every entity
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	Long: `Create or update the tables of every entity with gorm AutoMigrate.

Examples:
  api migrate                 # Create missing tables and columns
  api migrate --debug         # Print the executed SQL
  api migrate --reset         # Drop every table and recreate it`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDebug, "debug", false, "Log the SQL statements")
	migrateCmd.Flags().BoolVar(&migrateReset, "reset", false, "Drop all tables before migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	application, err := bootstrap()
	if err != nil {
		return err
	}
	defer application.Release()

	if migrateReset {
		if err := application.InitDb(); err != nil {
			return err
		}
		zap.L().Warn("database reset completed")
		return nil
	}
	if err := application.MigrateDB(migrateDebug); err != nil {
		return err
	}
	zap.L().Info("database migration completed")
	return nil
}
