package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "city_access", cfg.Mongo.Database)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.InDelta(t, 5.0, cfg.LoginRateLimit, 0.0001)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":            "s3cret",
		"ENV":                   "production",
		"STORE_DRIVER":          "postgres",
		"POSTGRES_URL":          "postgres://u:p@db:5432/portal",
		"POSTGRES_AUTO_MIGRATE": "false",
		"TOKEN_TTL":             "2h",
		"REDIS_DB":              "3",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://u:p@db:5432/portal", cfg.Postgres.URL)
	assert.False(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":   {"JWT_SECRET": "x", "STORE_DRIVER": "sqlite"},
		"negative ttl":     {"JWT_SECRET": "x", "TOKEN_TTL": "-1h"},
		"malformed number": {"JWT_SECRET": "x", "REDIS_DB": "three"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, func() { Load() })

	t.Setenv("JWT_SECRET", "s3cret")
	assert.NotPanics(t, func() { Load() })
}

func TestLoadWithoutSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "postgres")

	cfg := LoadWithoutSecrets()
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
}
