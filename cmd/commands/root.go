package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/routinely-backend/internal/app"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

var envFiles []string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routinely",
		Short: "Routine and habit tracking backend",
		Long: `Routinely tracks recurring routine tasks and their daily logs,
job interviews and completion goals, and reports weekly and monthly
progress and streaks over an HTTP API.

Configuration comes from the environment, optionally loaded from .env.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.LoadDotEnv(envFiles...)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment from these files instead of .env")

	cmd.AddCommand(
		NewServeCmd(),
		NewMigrateCmd(),
		NewSeedCmd(),
		NewGenerateTodayCmd(),
		NewVersionCmd(),
	)
	return cmd
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// bootstrap loads configuration and a logger for a subcommand.
func bootstrap() (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig(versionInfo.Version)
	if err != nil {
		return app.Config{}, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// openMigrated opens the app without tracing and makes sure the schema exists.
func openMigrated(ctx context.Context, cfg app.Config, log *logger.Logger) (*app.App, error) {
	a, err := app.Open(ctx, log, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Migrate(); err != nil {
		a.Close(ctx)
		return nil, err
	}
	return a, nil
}
