package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/holocron/internal/model"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// Embed all SQL files under migrations/ at compile time, so the binary
// carries its own PostgreSQL schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date.
//
// PostgreSQL runs the embedded SQL migrations with jackc/tern on a pooled
// connection, tracking the version in the schema_version table. SQLite,
// used for local runs and tests, is auto-migrated from the model structs.
func Migrate(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	switch db.Dialect {
	case DialectPostgres:
		return migratePostgres(ctx, logger, db)
	case DialectSQLite:
		if err := db.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
		logger.Info().Msg("sqlite schema auto-migrated")
		return nil
	default:
		return fmt.Errorf("no migration strategy for dialect %q", db.Dialect)
	}
}

func migratePostgres(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring migration connection: %w", err)
	}
	defer conn.Release()

	m, err := tern.NewMigrator(ctx, conn.Conn(), "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
