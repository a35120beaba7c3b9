// Package migrations applies the embedded schema with goose.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedded embed.FS

const dir = "sql"

type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) { l.Infof(format, v...) }

func setup(logger *zap.Logger) error {
	goose.SetBaseFS(embedded)
	goose.SetLogger(gooseLogger{logger.Sugar()})
	return goose.SetDialect("postgres")
}

// Up applies every pending migration. The scripts are written with IF NOT EXISTS so
// running them against a partially migrated database is harmless.
func Up(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the latest migration.
func Down(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.DownContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func Status(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return goose.StatusContext(ctx, db, dir)
}
