package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "UTC", cfg.ReportTimezone)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SESSION_STORE", "cookie")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "cookie", cfg.SessionStore)
	assert.True(t, cfg.IsProduction())
}

func TestLocation(t *testing.T) {
	cfg := &Config{ReportTimezone: "Asia/Tokyo"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	cfg.ReportTimezone = ""
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.ReportTimezone = "Nowhere/Special"
	_, err = cfg.Location()
	assert.Error(t, err)
}
