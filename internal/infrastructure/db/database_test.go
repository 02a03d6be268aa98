package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/workitem-tracker/internal/config"
	"go.uber.org/zap"
)

func TestNewDatabase_SQLiteMemory(t *testing.T) {
	db, err := NewDatabase(config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		AutoMigrate:  true,
	}, "silent", zap.NewNop())
	require.NoError(t, err)
	defer Close(db, zap.NewNop())

	assert.True(t, db.Migrator().HasTable("work"))
	for _, column := range []string{"idwork", "username", "date", "description", "guide", "status", "archive"} {
		assert.True(t, db.Migrator().HasColumn("work", column), column)
	}
}

func TestNewDatabase_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.db")

	db, err := NewDatabase(config.DatabaseConfig{Driver: "sqlite", Path: path, MaxOpenConns: 2}, "silent", zap.NewNop())
	require.NoError(t, err)

	assert.False(t, db.Migrator().HasTable("work"), "tables are only created when auto_migrate is set")
	require.NoError(t, EnsureSchema(db, zap.NewNop()))
	assert.True(t, db.Migrator().HasTable("work"))
	assert.NoError(t, Close(db, zap.NewNop()))
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(config.DatabaseConfig{Driver: "oracle"}, "silent", zap.NewNop())
	assert.Error(t, err)
}
