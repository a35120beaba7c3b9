package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
)

const appName = "gearguard"

var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Maintenance management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("GEARGUARD_CONFIG", configPath)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (overrides GEARGUARD_CONFIG)")

	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd(), hashPasswordCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	return cmd
}

// bootstrap loads config, builds the logger and opens the database pool shared by every command.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *pgxpool.Pool, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}
	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}
	return cfg, logger, pool, nil
}
