package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "dog-registry/internal/adapters/storage/postgres"
	"dog-registry/internal/platform/config"
	"dog-registry/internal/platform/logger"
	"dog-registry/internal/router"
)

// @title Dog Registry API
// @version 1.0
// @description Alta de perros con validación, flash y manejo de errores de storage.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		opened, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer opened.Close()
		db = opened

		if cfg.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := pg.Migrate(ctx, db)
			cancel()
			if err != nil {
				log.Error("migrations failed", map[string]any{"error": err.Error()})
				os.Exit(1)
			}
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}
	if cfg.FlashSecret == "" {
		log.Warn("FLASH_SECRET not set, flash cookies are signed with a random key", nil)
	}

	r := router.NewRouter(router.Options{
		Logger:        log,
		DB:            db,
		SecureCookies: cfg.SecureCookies,
		FlashKey:      []byte(cfg.FlashSecret),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
