package commands

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/routinely-backend/internal/app"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Open the database, apply migrations and serve the HTTP API on PORT.

The server drains in-flight requests on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := cmd.Context()
			a, err := app.New(ctx, log, cfg)
			if err != nil {
				return err
			}
			defer a.Close(ctx)
			return a.Run(ctx)
		},
	}
}
