package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/pkg/config"
)

type seedStep struct {
	name string
	run  func(ctx context.Context, db *pgxpool.Pool) error
}

// Run fills the demo dictionaries and the admin account. Every insert is idempotent; a failing
// step is logged and the remaining steps still run. The number of failed steps is returned.
func Run(ctx context.Context, db *pgxpool.Pool, cfg *config.Config, logger *zap.Logger) int {
	steps := []seedStep{
		{"categories", seedCategories},
		{"teams", seedTeams},
		{"work centers", seedWorkCenters},
		{"admin user", func(ctx context.Context, db *pgxpool.Pool) error { return SeedAdmin(ctx, db, cfg.Seed) }},
		{"equipment", seedEquipment},
	}

	failed := 0
	for _, step := range steps {
		if err := step.run(ctx, db); err != nil {
			failed++
			logger.Error("seed step failed", zap.String("step", step.name), zap.Error(err))
			continue
		}
		logger.Info("seed step done", zap.String("step", step.name))
	}
	return failed
}
