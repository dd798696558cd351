package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var envPath string

var rootCmd = &cobra.Command{
	Use:   "cafeteria",
	Short: "Staff cafeteria payments with face liveness check",
	Long: `Cafeteria verifies the card holder's face at the terminal, then settles
the bill against the daily role subsidy and the monthly spending limit.

Commands:
  serve     HTTP API for terminals, session sweeper and the balance bot
  notifier  Kafka consumer delivering receipts to Telegram and e-mail
  migrate   database migrations`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "Path to the .env file, optional")

	rootCmd.AddCommand(serveCmd, notifierCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
