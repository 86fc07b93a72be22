package main

import (
	"os"

	"github.com/spf13/cobra"

	"sepapay/internal/interfaces/cli/migrate"
	"sepapay/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sepapay",
		Short: "SEPA direct debit payment service",
		Long:  `Payment service handling SEPA direct debit tokenization, charging and gateway event reconciliation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
