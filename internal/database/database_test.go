package database

import (
	"testing"

	"github.com/fazla-cloud/thunder-agency-platform/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrate_SQLite(t *testing.T) {
	db, err := Connect(&config.Config{DBDriver: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "profiles", "projects", "tasks", "content_types", "platforms", "durations", "dimensions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	for _, idx := range compositeIndexes {
		assert.True(t, db.Migrator().HasIndex(idx.table, idx.name), idx.name)
	}

	// Running again must not fail on existing indexes.
	require.NoError(t, Migrate(db))
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
