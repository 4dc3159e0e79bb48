package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stockbill-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "stockbill", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STOCKBILL_DATABASE_HOST", "db.internal")
	t.Setenv("STOCKBILL_DATABASE_PASSWORD", "hunter2")
	t.Setenv("STOCKBILL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestProductionValidation(t *testing.T) {
	t.Run("production requires jwt secret", func(t *testing.T) {
		t.Setenv("STOCKBILL_APP_ENV", "production")
		t.Setenv("STOCKBILL_DATABASE_PASSWORD", "hunter2")
		t.Setenv("STOCKBILL_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		t.Setenv("STOCKBILL_APP_ENV", "production")
		t.Setenv("STOCKBILL_JWT_SECRET", "secret")
		t.Setenv("STOCKBILL_DATABASE_PASSWORD", "hunter2")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("complete production config is accepted", func(t *testing.T) {
		t.Setenv("STOCKBILL_APP_ENV", "production")
		t.Setenv("STOCKBILL_JWT_SECRET", "secret")
		t.Setenv("STOCKBILL_DATABASE_PASSWORD", "hunter2")
		t.Setenv("STOCKBILL_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "stockbill",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
