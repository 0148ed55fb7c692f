package main

import (
	"fmt"

	"github.com/bagdasarian/bizdesk/internal/config"
	"github.com/bagdasarian/bizdesk/internal/db"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			database, err := db.NewPostgres(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			if rollback, _ := cmd.Flags().GetBool("rollback"); rollback {
				version, err := db.Rollback(cmd.Context(), database)
				if err != nil {
					return err
				}
				fmt.Printf("Rolled back to version %d\n", version)
				return nil
			}

			version, changed, err := db.Migrate(cmd.Context(), database)
			if err != nil {
				return err
			}

			if !changed {
				fmt.Printf("No pending migrations, version %d\n", version)
				return nil
			}
			fmt.Printf("Migrated to version %d\n", version)
			return nil
		},
	}

	cmd.Flags().Bool("rollback", false, "roll back the last applied migration instead")
	return cmd
}
