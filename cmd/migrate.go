package main

import (
	"github.com/spf13/cobra"

	"github.com/Nik0lakt/cafeteria-project/pkg/config"
	"github.com/Nik0lakt/cafeteria-project/pkg/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|version|redo|reset]",
	Short: "Run database migrations",
	Long: `Run goose migrations embedded in the binary against POSTGRES_DSN.

Examples:
  # Apply all pending migrations
  cafeteria migrate up

  # Show applied versions
  cafeteria migrate status`,
	Args:      cobra.RangeArgs(0, 2),
	ValidArgs: []string{"up", "down", "status", "version", "redo", "reset"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.New(envPath)
	if err != nil {
		return err
	}

	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	return postgres.Migrate(cmd.Context(), cfg.Postgres.DSN, command, args[min(len(args), 1):]...)
}
