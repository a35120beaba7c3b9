package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range categoryNames {
		if _, err := db.Exec(ctx, `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
	}
	return nil
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range teamNames {
		if _, err := db.Exec(ctx, `INSERT INTO teams (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("team %q: %w", name, err)
		}
	}
	return nil
}

func seedWorkCenters(ctx context.Context, db *pgxpool.Pool) error {
	for _, wc := range workCenters {
		_, err := db.Exec(ctx,
			`INSERT INTO workcenters (name, code, capacity) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING`,
			wc.Name, wc.Code, wc.Capacity)
		if err != nil {
			return fmt.Errorf("work center %q: %w", wc.Code, err)
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap Admin account. Self-registration never grants Admin, so this is
// the only way to obtain the first one.
func SeedAdmin(ctx context.Context, db *pgxpool.Pool, cfg config.SeedConfig) error {
	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		`INSERT INTO users (email, name, hashed_password, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
		cfg.AdminEmail, "Administrator", hashed, string(constants.RoleAdmin))
	return err
}

// seedEquipment resolves category and team by name, so it has to run after those steps.
func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, eq := range equipment {
		_, err := db.Exec(ctx, `
			INSERT INTO equipments (name, serial_number, status, default_technician_id, category_id, team_id)
			VALUES ($1, $2, $3, $4,
				(SELECT id FROM categories WHERE name = $5),
				(SELECT id FROM teams WHERE name = $6))
			ON CONFLICT (serial_number) DO NOTHING`,
			eq.Name, eq.Serial, string(constants.EquipmentActive), eq.Technician, eq.Category, eq.Team)
		if err != nil {
			return fmt.Errorf("equipment %q: %w", eq.Serial, err)
		}
	}
	return nil
}
