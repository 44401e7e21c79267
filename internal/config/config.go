package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	AppName          = "realestate-seed"
	DefaultDBPath    = "real_estate.db"
	DefaultExcelPath = "real_estate_data.xlsx"
	DefaultBatchSize = 500
)

type Config struct {
	DBPath       string `validate:"required_without=DatabaseURL"`
	DatabaseURL  string
	ExcelPath    string `validate:"required"`
	Seed         uint64
	RentalIDMode string `validate:"oneof=rank rental"`
	LogLevel     string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	BatchSize    int    `validate:"gt=0"`
	Force        bool
}

// Load reads the configuration with FromEnv and validates it.
func Load() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads an optional .env file, then the environment, falling back to
// defaults for anything unset. Only malformed numbers are rejected here;
// callers that apply overrides validate afterwards.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:       getEnv("DB_PATH", DefaultDBPath),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ExcelPath:    getEnv("EXCEL_PATH", DefaultExcelPath),
		RentalIDMode: getEnv("RENTAL_ID_MODE", "rank"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		BatchSize:    DefaultBatchSize,
	}

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_SIZE %q: %w", v, err)
		}
		cfg.BatchSize = n
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// UsesPostgres reports whether DatabaseURL selects a postgres store.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://") ||
		strings.Contains(c.DatabaseURL, "host=")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
