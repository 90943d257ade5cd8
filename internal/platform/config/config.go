package config

import (
	"os"
	"strings"
	"time"

	"dog-registry/internal/platform/logger"
)

// Config se arma solo desde variables de entorno.
type Config struct {
	Addr string

	// DatabaseDSN vacío => storage in-memory.
	DatabaseDSN string
	AutoMigrate bool

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	SecureCookies bool
	// FlashSecret firma la cookie flash; vacío => clave aleatoria.
	FlashSecret string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom permite inyectar el lookup (tests).
func LoadFrom(getenv func(string) string) Config {
	addr := ":8080"
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		addr = ":" + v
	}

	app := strings.TrimSpace(getenv("APP_NAME"))
	if app == "" {
		app = "dog-registry"
	}

	return Config{
		Addr:          addr,
		DatabaseDSN:   strings.TrimSpace(getenv("DB_DSN")),
		AutoMigrate:   parseBool(getenv("DB_AUTO_MIGRATE")),
		LogLevel:      logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat:     logger.ParseFormat(getenv("LOG_FORMAT")),
		AppName:       app,
		SecureCookies: parseBool(getenv("FLASH_COOKIE_SECURE")),
		FlashSecret:   strings.TrimSpace(getenv("FLASH_SECRET")),
		ReadTimeout:   5 * time.Second,
		WriteTimeout:  10 * time.Second,
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
