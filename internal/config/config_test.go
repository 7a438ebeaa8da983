package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "bookly", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 20.0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("POSTGRES_HOST", "pg")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB", "catalogue")
	t.Setenv("MONGO_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "pg", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "catalogue", cfg.Mongo.Database)
	assert.Equal(t, 750*time.Millisecond, cfg.Mongo.Timeout)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "MONGO_TIMEOUT")
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	_, err := Load()
	assert.ErrorContains(t, err, "POSTGRES_PASSWORD")

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("DB_MAX_RETRIES", "3")

	dbCfg, err := LoadDatabaseConfig(DatabaseConfig{
		Host: "pg", Port: 5432, User: "bookly", Password: "pw", Database: "bookly", SSLMode: "disable", MaxConns: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "pg", dbCfg.Host)
	assert.Equal(t, "bookly", dbCfg.Username)
	assert.Equal(t, int32(10), dbCfg.MaxConns)
	assert.Equal(t, 3, dbCfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, dbCfg.RetryDelay)
}

func TestLoadDatabaseConfig_InvalidRetries(t *testing.T) {
	t.Setenv("DB_MAX_RETRIES", "many")

	_, err := LoadDatabaseConfig(DatabaseConfig{})
	assert.ErrorContains(t, err, "DB_MAX_RETRIES")
}

func TestLoadMongoConfig(t *testing.T) {
	mc := LoadMongoConfig(MongoConfig{URI: "mongodb://m", Database: "d", Timeout: time.Second})

	assert.Equal(t, "mongodb://m", mc.URI)
	assert.Equal(t, "d", mc.Database)
	assert.Equal(t, time.Second, mc.Timeout)
}
