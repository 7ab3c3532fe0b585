// Package main is the entry point for the sheet gRPC server and its client
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "Character sheet rules gRPC server",
	Long: `rpg-sheet serves a character sheet over gRPC: six attributes and their
modifiers, class eligibility and a point-budgeted skill allocation.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is fine; real environment variables still apply.
		_ = godotenv.Load()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
