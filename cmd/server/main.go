package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/api/handler"
	"uatf-curricular/backend/internal/api/router"
	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/database"
	"uatf-curricular/backend/pkg/jwt"
	applogger "uatf-curricular/backend/pkg/logger"
	"uatf-curricular/backend/pkg/redis"
	"uatf-curricular/backend/pkg/storage"
)

func main() {
	// 1. config
	cfg, err := config.Load(os.Getenv("CURRICULAR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log, "api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 3. database and schema
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. redis is optional: without it tokens cannot be revoked and login is not rate limited
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist and login rate limit disabled", zap.Error(err))
		rdb = nil
	}

	// 5. evidence storage
	ctx := context.Background()
	store, err := storage.New(ctx, &cfg.Storage, logger)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	// 6. Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	deps := service.Deps{
		Config:  cfg,
		Repo:    repository.NewRepository(db),
		Storage: store,
		JWT:     jwtMgr,
		Logger:  logger,
	}
	if rdb != nil {
		deps.Blacklist = rdb
	}
	svc := service.NewService(deps)
	h := handler.NewHandler(svc, logger)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		// evidence uploads and downloads run up to 50 MB
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}
	if c, ok := store.(io.Closer); ok {
		c.Close()
	}

	logger.Info("server stopped")
}
