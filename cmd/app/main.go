package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "bizdesk",
		Short:   "Business management API: clients, projects, team and payments",
		Version: Version,
	}

	serve := serveCmd()
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd())

	// без подкоманды запускается сервер
	rootCmd.RunE = serve.RunE
	rootCmd.Flags().AddFlagSet(serve.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
