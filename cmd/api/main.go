package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/ayushgupta5924/quickbucks/config"
	"github.com/ayushgupta5924/quickbucks/internal/httpserver"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

// @title       QuickBucks API
// @description Personal task tracker with virtual rewards, natural-language task entry, and productivity insights.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting QuickBucks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping Postgres: ", err)
		return
	}
	logger.Infof(ctx, "Connected to Postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. JWT manager
	jwtManager := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:     logger,
		Config:     cfg,
		PostgresDB: db,
		JWTManager: jwtManager,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
