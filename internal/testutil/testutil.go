// Package testutil builds application containers backed by a fresh
// in-memory SQLite database for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/deppfellow/holocron/internal/database"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewServer returns a Server over a migrated in-memory database. The
// database is closed when the test ends.
func NewServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Primary.Env = "test"
	cfg.Observability.Environment = "test"
	cfg.Database.URL = "sqlite://:memory:"
	cfg.Observability.HealthChecks.Checks = []string{config.CheckDatabase}

	logger := zerolog.Nop()

	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(context.Background(), &logger, db))

	return server.NewWithDatabase(cfg, &logger, nil, db)
}

// Create inserts rows into the test database, failing the test on error.
func Create(t *testing.T, s *server.Server, rows ...any) {
	t.Helper()

	for _, row := range rows {
		require.NoError(t, s.DB.DB.Create(row).Error)
	}
}
