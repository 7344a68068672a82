package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/cli/cleanup"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/cli/migrate"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "visitord",
		Short: "Visitor registration and parking allocation service",
		Long:  `visitord runs the visitor registration engine: transactional submissions with duplicate suppression, arrears-driven cooldowns, parking charge quotes and atomic lot allocation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		cleanup.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
