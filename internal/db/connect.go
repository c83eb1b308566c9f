package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"taskboard/internal/logger"
	"taskboard/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

// Handle is an open store: exactly one of Pool and SQL is set.
type Handle struct {
	Driver string
	Pool   *pgxpool.Pool
	SQL    *sql.DB
}

// Driver picks the driver and driver-specific DSN from a DATABASE_URL.
func Driver(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return migrations.Postgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return migrations.SQLite, strings.TrimPrefix(databaseURL, "sqlite://"), nil
	case strings.HasPrefix(databaseURL, "file:"):
		return migrations.SQLite, databaseURL, nil
	}
	return "", "", fmt.Errorf("db: unsupported DATABASE_URL scheme")
}

// Open connects to the store named by databaseURL.
func Open(ctx context.Context, databaseURL string) (*Handle, error) {
	driver, dsn, err := Driver(databaseURL)
	if err != nil {
		return nil, err
	}

	if driver == migrations.SQLite {
		sqlDB, err := OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		logger.Info("database connected", "driver", driver)
		return &Handle{Driver: driver, SQL: sqlDB}, nil
	}

	pool, err := Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "driver", driver)
	return &Handle{Driver: driver, Pool: pool}, nil
}

// Connect creates a pgx pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// OpenSQLite opens a SQLite database file with foreign keys enforced.
func OpenSQLite(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; avoids SQLITE_BUSY under concurrent requests
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return sqlDB, nil
}

func (h *Handle) Ping(ctx context.Context) error {
	if h.Pool != nil {
		return h.Pool.Ping(ctx)
	}
	return h.SQL.PingContext(ctx)
}

func (h *Handle) Close() {
	if h.Pool != nil {
		h.Pool.Close()
		return
	}
	if h.SQL != nil {
		_ = h.SQL.Close()
	}
}

// Migrate applies every embedded migration for the handle's driver.
// Statements are idempotent so re-running is safe.
func (h *Handle) Migrate(ctx context.Context) error {
	migs, err := migrations.For(h.Driver)
	if err != nil {
		return err
	}
	for _, m := range migs {
		if err := h.exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		logger.Debug("migration applied", "name", m.Name)
	}
	return nil
}

func (h *Handle) exec(ctx context.Context, stmt string) error {
	if h.Pool != nil {
		_, err := h.Pool.Exec(ctx, stmt)
		return err
	}
	_, err := h.SQL.ExecContext(ctx, stmt)
	return err
}
