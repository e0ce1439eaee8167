package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/vaultpass/passgen-go/internal/validator"
)

const devFormSecret = "dev-secret-change-in-production"

var ErrDevSecretInProduction = errors.New("FORM_SECRET must be set in production environment")

type Config struct {
	Port           string
	Env            string
	FormSecret     string
	FormTTL        time.Duration
	MinLength      int
	MaxLength      int
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment, falling back to
// defaults for unset or malformed values.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		FormSecret:     getEnv("FORM_SECRET", devFormSecret),
		FormTTL:        getDuration("FORM_TTL", 30*time.Minute),
		MinLength:      getInt("PASSWORD_MIN_LENGTH", validator.DefaultMinLength),
		MaxLength:      getInt("PASSWORD_MAX_LENGTH", validator.DefaultMaxLength),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.FormSecret == devFormSecret {
		return Config{}, ErrDevSecretInProduction
	}
	if _, err := cfg.Validator(); err != nil {
		return Config{}, err
	}
	if cfg.FormTTL <= 0 {
		return Config{}, fmt.Errorf("FORM_TTL must be positive, got %s", cfg.FormTTL)
	}

	return cfg, nil
}

// Validator returns the length validator for the configured bounds.
func (c Config) Validator() (validator.Validator, error) {
	return validator.New(c.MinLength, c.MaxLength)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring malformed number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring malformed duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
