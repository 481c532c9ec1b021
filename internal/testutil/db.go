// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yoockh/jobboard/config"
	"github.com/yoockh/jobboard/internal/repositories/relational"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory SQLite database that lives as long as t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, relational.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
