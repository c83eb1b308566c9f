package db

import (
	"context"
	"path/filepath"
	"testing"

	"taskboard/internal/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	tests := []struct {
		url    string
		driver string
		dsn    string
	}{
		{"postgres://u:p@localhost:5432/tasks", migrations.Postgres, "postgres://u:p@localhost:5432/tasks"},
		{"postgresql://localhost/tasks", migrations.Postgres, "postgresql://localhost/tasks"},
		{"sqlite:///tmp/tasks.db", migrations.SQLite, "/tmp/tasks.db"},
		{"file:tasks.db?cache=shared", migrations.SQLite, "file:tasks.db?cache=shared"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			driver, dsn, err := Driver(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}

	_, _, err := Driver("mysql://localhost/tasks")
	assert.Error(t, err)
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	ctx := context.Background()
	h, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Ping(ctx))
	require.NoError(t, h.Migrate(ctx))
	// second run is a no-op
	require.NoError(t, h.Migrate(ctx))

	var n int
	require.NoError(t, h.SQL.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n))
	assert.Zero(t, n)
}
