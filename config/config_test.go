package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "pluralkit", cfg.Postgres.DBName)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.False(t, cfg.Redis.Enabled())
	require.Equal(t, "0.0.0.0:5000", cfg.ServerAddr())
	require.Equal(t, 30*time.Second, cfg.Auth.TokenCacheTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("AUTH_TOKEN_CACHE_TTL", "2m")

	cfg, err := load()
	require.NoError(t, err)

	require.Equal(t, "db.internal", cfg.Postgres.Host)
	require.True(t, cfg.Redis.Enabled())
	require.Equal(t, 2*time.Minute, cfg.Auth.TokenCacheTTL)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 5000},
		Postgres: PostgresConfig{Host: "localhost", User: "u", Password: "p", DBName: "d"},
	}
	require.NoError(t, valid.Validate())

	noPort := valid
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	noCreds := valid
	noCreds.Postgres.Password = ""
	require.Error(t, noCreds.Validate())

	cacheWithoutTTL := valid
	cacheWithoutTTL.Redis.Addr = "localhost:6379"
	require.Error(t, cacheWithoutTTL.Validate())

	cacheWithoutTTL.Auth.TokenCacheTTL = time.Minute
	require.NoError(t, cacheWithoutTTL.Validate())
}
