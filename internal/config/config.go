// Package config loads revlab settings from the environment.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

// Storage backends.
const (
	BackendSQLite     = "sqlite"
	BackendMemory     = "memory"
	BackendPostgres   = "postgres"
	BackendClickhouse = "clickhouse"
)

// Config is the full runtime configuration.
type Config struct {
	Storage   StorageConfig
	Display   DisplayConfig
	KPI       KPIDisplayConfig
	LogLevel  string `envconfig:"REVLAB_LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	MetricsTo string `envconfig:"REVLAB_METRICS_TEXTFILE" default:""`
}

// StorageConfig selects and addresses the key-value backend.
type StorageConfig struct {
	Backend       string `envconfig:"REVLAB_STORAGE" default:"sqlite" validate:"oneof=sqlite memory postgres clickhouse"`
	DataDir       string `envconfig:"REVLAB_DATA_DIR" default:".revlab" validate:"required_if=Backend sqlite"`
	PostgresDSN   string `envconfig:"REVLAB_POSTGRES_DSN" default:"" validate:"required_if=Backend postgres"`
	ClickhouseDSN string `envconfig:"REVLAB_CLICKHOUSE_DSN" default:"" validate:"required_if=Backend clickhouse"`
	ScenariosKey  string `envconfig:"REVLAB_SCENARIOS_KEY" default:"savedScenarios" validate:"storagekey"`
	SessionKey    string `envconfig:"REVLAB_SESSION_KEY" default:"session" validate:"storagekey,nefield=ScenariosKey"`
}

// DisplayConfig controls currency rendering for the revenue estimator.
type DisplayConfig struct {
	Locale   string `envconfig:"REVLAB_LOCALE" default:"en-US" validate:"bcp47"`
	Currency string `envconfig:"REVLAB_CURRENCY" default:"USD" validate:"iso4217"`
}

// KPIDisplayConfig controls currency rendering for the KPI calculator.
type KPIDisplayConfig struct {
	Locale   string `envconfig:"REVLAB_KPI_LOCALE" default:"id-ID" validate:"bcp47"`
	Currency string `envconfig:"REVLAB_KPI_CURRENCY" default:"IDR" validate:"iso4217"`
}

var storageKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Load reads an optional .env file (envFile, or ./.env when empty), then the
// process environment, and validates the result.
func Load(envFile string) (*Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads envFile. The default ./.env is optional; an explicit file is not.
// Variables already set in the environment win.
func loadDotEnv(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// Validate checks field constraints. Call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("storagekey", func(fl validator.FieldLevel) bool {
		return storageKeyRegex.MatchString(fl.Field().String())
	})
	return v
}
