package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/seed"
)

var seedFile string

func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, routine tasks, goals and interviews from YAML",
		Long: `Create the records described in a YAML seed file.
Users that already exist are reused.

Examples:
  routinely seed --file seed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.LoadFile(seedFile)
			if err != nil {
				return err
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

			sum, err := seed.Apply(dbctx.Context{Ctx: ctx}, log, seed.Services{
				Users:      a.Services.User,
				Tasks:      a.Services.RoutineTask,
				Goals:      a.Services.Goal,
				Interviews: a.Services.Interview,
			}, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d routine tasks, %d goals, %d interviews\n",
				sum.Users, sum.RoutineTasks, sum.Goals, sum.Interviews)
			return nil
		},
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "Seed file to load")
	return cmd
}
