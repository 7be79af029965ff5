// Package testutil shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/pkg/database"
)

// NewDB fresh in-memory sqlite database with the full schema.
// Each call gets its own database; it is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := database.NewDB(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db, cfg.Driver, zap.NewNop()); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
