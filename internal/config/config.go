package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig wraps every rejected environment configuration
var ErrInvalidConfig = errors.New("invalid environment configuration")

// Config holds the application configuration
type Config struct {
	AmmoConfigPath   string   `validate:"required"`
	CatalogPath      string   `validate:"required"`
	OutputPath       string   `validate:"required"`
	MetricsPath      string   // empty disables the metrics dump
	LogLevel         string   `validate:"oneof=debug info warn warning error"`
	LogFormat        string   `validate:"oneof=json text"`
	Environment      string   `validate:"oneof=dev staging prod test"`
	Maps             []string `validate:"dive,required"`
	IdempotentSpawns bool
}

// Load loads the configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	// real environment variables win over .env entries
	_ = godotenv.Load()

	cfg := &Config{
		AmmoConfigPath: getEnv(EnvAmmoConfigPath, DefaultConfigPathAmmo),
		CatalogPath:    getEnv(EnvCatalogPath, DefaultCatalogPath),
		OutputPath:     getEnv(EnvOutputPath, DefaultOutputPath),
		MetricsPath:    getEnv(EnvMetricsPath, ""),
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		Maps:           getEnvAsList(EnvMapAllowlist),
	}

	idempotent, err := getEnvAsBool(EnvIdempotentSpawns, false)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s value: %w", ErrInvalidConfig, EnvIdempotentSpawns, err)
	}
	cfg.IdempotentSpawns = idempotent

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			parts := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(parts, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool parses a boolean environment variable. Unset or blank yields
// the default.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}

// getEnvAsList splits a comma separated variable, dropping blanks. Unset or
// blank yields nil.
func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
