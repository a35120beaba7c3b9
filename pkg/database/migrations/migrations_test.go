package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedded, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		raw, err := fs.ReadFile(embedded, name)
		require.NoError(t, err)
		body := string(raw)
		assert.Contains(t, body, "-- +goose Up", name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestAlterMigrationsAreIdempotent(t *testing.T) {
	files, err := fs.Glob(embedded, "sql/*.sql")
	require.NoError(t, err)

	for _, name := range files {
		raw, err := fs.ReadFile(embedded, name)
		require.NoError(t, err)
		for _, line := range strings.Split(string(raw), "\n") {
			if strings.Contains(line, "ADD COLUMN") {
				assert.Contains(t, line, "IF NOT EXISTS", name)
			}
		}
	}
}
