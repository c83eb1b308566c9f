package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_RequiredValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	cfg, missing := FromEnv()
	assert.Nil(t, cfg)
	assert.Equal(t, "DATABASE_URL", missing)

	t.Setenv("DATABASE_URL", "sqlite://tasks.db")
	t.Setenv("JWT_SECRET", "")
	cfg, missing = FromEnv()
	assert.Nil(t, cfg)
	assert.Equal(t, "JWT_SECRET", missing)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://tasks.db")
	t.Setenv("JWT_SECRET", "secret")
	for _, k := range []string{"APP_PORT", "APP_ENV", "TOKEN_TTL_HOURS", "BCRYPT_COST", "CORS_ORIGINS", "AUTH_RATE_LIMIT", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}

	cfg, missing := FromEnv()
	require.Empty(t, missing)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.Production())
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, time.Minute, cfg.AuthRateWindow)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Empty(t, cfg.RedisAddr)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tasks")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("TASK_RATE_LIMIT", "5")
	t.Setenv("TASK_RATE_WINDOW_SECONDS", "10")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, missing := FromEnv()
	require.Empty(t, missing)
	assert.True(t, cfg.Production())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.TaskRateLimit)
	assert.Equal(t, 10*time.Second, cfg.TaskRateWindow)
	assert.Equal(t, 10, cfg.BcryptCost)
}
