package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
)

var generateUser string

func NewGenerateTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-today",
		Short: "Create today's pending logs for a user",
		Long: `Create a pending daily log for each of the user's routine tasks that
is scheduled today and has no log yet. Running it again creates nothing.

"Today" follows APP_TIMEZONE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(generateUser)
			if err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx := cmd.Context()
			a, err := openMigrated(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			created, err := a.Services.DailyLog.GenerateToday(dbctx.Context{Ctx: ctx}, userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d pending logs for %s\n", len(created), a.Services.DailyLog.Today())
			return nil
		},
	}

	cmd.Flags().StringVarP(&generateUser, "user", "u", "", "User ID")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
