package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/estate-service/internal/config"
)

func TestLoad_MissingDSNFails(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MissingJWTSecretFails(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/estate")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/estate")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "estate-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "postgres://localhost/estate", cfg.Postgres.DSN)
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	assert.True(t, cfg.Feed.CacheTTL() > 0)
}
