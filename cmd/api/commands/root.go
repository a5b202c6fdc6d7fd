package commands

import (
	"fmt"
	"os"

	"github.com/georgemunganga/printa-pos/internal/app"
	"github.com/georgemunganga/printa-pos/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Printa POS back-office API",
	Long: `CRUD API for the point of sale back office: categories, products,
positions, staff, users and invoice items.

Configuration is read from the YAML file given with --config (or APP_CONFIG),
then from .env and the process environment.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the YAML config file")
}

// bootstrap loads the configuration and initializes the application.
func bootstrap() (*app.Application, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		return nil, err
	}
	return application, nil
}
