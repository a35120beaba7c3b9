package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gearguard/pkg/database/migrations"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		migrateSub("up", "Apply all pending migrations", migrations.Up),
		migrateSub("down", "Roll back the latest migration", migrations.Down),
		migrateSub("status", "Print applied and pending migrations", migrations.Status),
	)
	return cmd
}

func migrateSub(use, short string, run func(context.Context, *pgxpool.Pool, *zap.Logger) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			defer pool.Close()
			return run(cmd.Context(), pool, logger)
		},
	}
}
