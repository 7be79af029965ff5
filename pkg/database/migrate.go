package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// One directory per driver; both must describe the same schema.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies every pending embedded migration for driver.
// The schema is always built from SQL, never from the gorm models.
func Migrate(db *gorm.DB, driver string, logger *zap.Logger) error {
	switch driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	var (
		instance migratedb.Driver
		name     string
	)
	if driver == "postgres" {
		instance, err = postgres.WithInstance(sqlDB, &postgres.Config{})
		name = "postgres"
	} else {
		instance, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
		name = "sqlite3"
	}
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	// m.Close is not called: it would close the shared sql.DB
	m, err := migrate.NewWithInstance("iofs", source, name, instance)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration left dirty", zap.String("driver", driver), zap.Uint("version", version))
	} else {
		logger.Info("database migrations applied", zap.String("driver", driver), zap.Uint("version", version))
	}

	return nil
}
