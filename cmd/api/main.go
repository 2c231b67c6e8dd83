package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pg "vet-records/internal/adapters/storage/postgres"
	"vet-records/internal/config"
	"vet-records/internal/platform/logger"
	"vet-records/internal/router"
	"vet-records/internal/server"
)

// @title Vet Records API
// @version 1.0
// @description Mascotas, registros médicos (vacunas y alergias) y estadísticas del dashboard.
// @BasePath /api
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vet-records: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sin DB_DSN => store in-memory (modo dev)
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()

		if err := pg.EnsureSchema(ctx, db); err != nil {
			return err
		}
		log.Info("postgres store ready", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{
		DB:                 db,
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	log.Info("starting server", map[string]any{"port": cfg.Port})
	return server.New(cfg, log, r).Run(ctx)
}
