package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := openMigrated(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.DB.Driver)
			return nil
		},
	}
}
