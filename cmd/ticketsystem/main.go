package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketsystem/internal/interfaces/cli/migrate"
	"ticketsystem/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketsystem",
		Short: "Internal ticket tracking service",
		Long:  `Ticket tracking service with a built-in HTTP server and database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
