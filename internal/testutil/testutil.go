// Package testutil contains shared test helpers.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"tubehub/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a file-backed SQLite database in the test's temp dir.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "tubehub.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// NewSchemaDB opens a database with every feature's tables in place.
func NewSchemaDB(t *testing.T) (*gorm.DB, *repository.SchemaManager) {
	t.Helper()

	db := NewDB(t)
	schema := repository.NewSchemaManager(db, nil, 0)
	require.NoError(t, schema.EnsureAll(context.Background()))
	return db, schema
}
