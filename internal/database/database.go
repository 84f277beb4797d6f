// Package database opens the relational store behind the API.
//
// Two backends are supported, selected from the connection URL:
//   - PostgreSQL through a pgx connection pool (pgxpool), with pgx query
//     tracing (tracelog + pgx-zerolog) and optional New Relic instrumentation
//     (nrpgx5). gorm runs on top of the pool via pgx's database/sql adapter.
//   - SQLite (pure Go driver) for local development and tests, used when no
//     URL is configured.
//
// Repositories only ever see the *gorm.DB.
package database

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/deppfellow/holocron/internal/config"
	loggerConfig "github.com/deppfellow/holocron/internal/logger"
	"github.com/glebarez/sqlite"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialect names the storage backend behind a Database.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Database wraps the gorm handle and, for PostgreSQL, the pgx pool it runs on.
type Database struct {
	DB      *gorm.DB
	Pool    *pgxpool.Pool
	Dialect Dialect
	log     *zerolog.Logger
}

// multiTracer allows chaining multiple pgx tracers.
//
// pgx supports a single Tracer in ConnConfig; this adapter fans out to the
// New Relic tracer and the local SQL tracelog.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the number of seconds to wait for a ping before
// considering the database unreachable.
const DatabasePingTimeout = 10

// ParseURL resolves a connection URL into a dialect and a driver DSN.
//
//	postgres://u:p@host/db       -> postgres, unchanged
//	postgresql://u:p@host/db     -> postgres, unchanged
//	sqlite:///tmp/test.db        -> sqlite, /tmp/test.db
//	:memory: or a plain path     -> sqlite, unchanged
func ParseURL(raw string) (Dialect, string, error) {
	switch {
	case raw == "":
		return "", "", fmt.Errorf("empty database url")
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DialectPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", raw)
		}
		if path != ":memory:" {
			path = filepath.Clean(path)
		}
		return DialectSQLite, path, nil
	case strings.Contains(raw, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme in %q", raw)
	default:
		return DialectSQLite, raw, nil
	}
}

// New opens the database described by cfg.Database.URL and pings it.
//
// PostgreSQL:
//   - parse the URL into a pgxpool config and apply pool limits
//   - attach the New Relic tracer if available
//   - in the local env attach the SQL tracelog (chained if both exist)
//   - open gorm over the pool
//
// SQLite:
//   - open gorm with the pure Go driver, foreign keys enforced
//   - cap the pool at one connection (SQLite serializes writers, and an
//     in-memory database lives only as long as its connection)
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	dialect, dsn, err := ParseURL(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger:  NewGormLogger(logger, cfg.Observability.Logging.SlowQueryThreshold, cfg.Primary.Env == "local"),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	database := &Database{
		Dialect: dialect,
		log:     logger,
	}

	switch dialect {
	case DialectPostgres:
		pool, err := newPool(cfg, dsn, logger, loggerService)
		if err != nil {
			return nil, err
		}

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}), gormConfig)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to open gorm on pgx pool: %w", err)
		}

		database.Pool = pool
		database.DB = gormDB

	case DialectSQLite:
		// The pure Go driver reports constraint failures as driver errors;
		// translating them gives sqlerr stable gorm sentinels to match on.
		gormConfig.TranslateError = true

		gormDB, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", dsn, err)
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)

		if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}

		database.DB = gormDB
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("dialect", string(dialect)).Msg("connected to the database")

	return database, nil
}

func newPool(cfg *config.Config, dsn string, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*pgxpool.Pool, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	if loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// SQL statement logging is noisy, so it is only enabled locally.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	return pool, nil
}

// Ping checks connectivity through the database/sql handle gorm uses.
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the gorm handle and, for PostgreSQL, the pgx pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")

	var closeErr error
	if db.DB != nil {
		if sqlDB, err := db.DB.DB(); err == nil {
			closeErr = sqlDB.Close()
		}
	}
	if db.Pool != nil {
		db.Pool.Close()
	}
	return closeErr
}
