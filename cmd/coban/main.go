package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/digitalcoban/coban/internal/interfaces/cli/migrate"
	"github.com/digitalcoban/coban/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coban",
		Short: "Coban - livestock tracking backend",
		Long:  `Coban is the backend for the livestock tracking service, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
