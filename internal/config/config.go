package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Default notification window, in local hours
const (
	DefaultNotificationStartHour = 4
	DefaultNotificationEndHour   = 18
)

var validate = validator.New()

// Config holds the runtime settings of the tracker process
type Config struct {
	DBType                string `validate:"oneof=sqlite postgres memory"`
	DBPath                string `validate:"required_if=DBType sqlite"`
	DatabaseURL           string `validate:"required_if=DBType postgres"`
	LogLevel              string `validate:"oneof=debug info warn error"`
	NotificationStartHour int    `validate:"min=0,max=23"`
	NotificationEndHour   int    `validate:"min=0,max=23,gtefield=NotificationStartHour"`
	CatalogImportPath     string
	CatalogImportSheet    string `validate:"required_with=CatalogImportPath"`
}

// Load reads an optional .env file, then the environment, and validates the result
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{
		DBType:                getEnv("DB_TYPE", "sqlite"),
		DBPath:                getEnv("DB_PATH", "data/sunnah.db"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		NotificationStartHour: getEnvInt("NOTIFICATION_START_HOUR", DefaultNotificationStartHour),
		NotificationEndHour:   getEnvInt("NOTIFICATION_END_HOUR", DefaultNotificationEndHour),
		CatalogImportPath:     getEnv("CATALOG_IMPORT_PATH", ""),
		CatalogImportSheet:    getEnv("CATALOG_IMPORT_SHEET", "Sheet1"),
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvInt keeps the fallback when the variable is unset or not a number
func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
