// Package cli implements the manage command: schema migration, catalog
// seeding and account creation outside the HTTP API.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/pkg/database"
	applogger "uatf-curricular/backend/pkg/logger"
)

var configPath string

// RootCmd manage entry point
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "manage",
		Short:         "Administrative tasks for the curriculum redesign tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (defaults to ./config/config.yaml)")

	root.AddCommand(MigrateCmd())
	root.AddCommand(SeedCmd())
	root.AddCommand(CreateUserCmd())
	return root
}

// env what every command needs
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log, "manage")
	if err != nil {
		return nil, err
	}
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	if sqlDB, _ := e.db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
	_ = e.logger.Sync()
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("-")
)
