package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the CLI and the HTTP API.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"basenames"`

	// LogLevel and LogFormat override the defaults implied by Env when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP   HTTP
	Naming Naming
}

// HTTP configures the API server.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Naming bounds the work a single request may ask of the naming engine.
type Naming struct {
	MaxListing int   `env:"NAMING_MAX_LISTING" envDefault:"1000"`
	MaxBase    int64 `env:"NAMING_MAX_BASE" envDefault:"100000"`
	Prewarm    int64 `env:"NAMING_PREWARM" envDefault:"0"`
}

// Validate checks parsed values for ranges env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	for name, d := range map[string]time.Duration{
		"HTTP_READ_TIMEOUT":     c.HTTP.ReadTimeout,
		"HTTP_WRITE_TIMEOUT":    c.HTTP.WriteTimeout,
		"HTTP_IDLE_TIMEOUT":     c.HTTP.IdleTimeout,
		"HTTP_SHUTDOWN_TIMEOUT": c.HTTP.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.Naming.MaxListing < 1 {
		errs = append(errs, fmt.Errorf("NAMING_MAX_LISTING must be at least 1, got %d", c.Naming.MaxListing))
	}
	if c.Naming.MaxBase < 1 {
		errs = append(errs, fmt.Errorf("NAMING_MAX_BASE must be at least 1, got %d", c.Naming.MaxBase))
	}
	if c.Naming.Prewarm < 0 {
		errs = append(errs, fmt.Errorf("NAMING_PREWARM must not be negative, got %d", c.Naming.Prewarm))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Load reads the given .env files, or ./.env if none are given and it
// exists, then parses and validates the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure.
func MustLoad(envFiles ...string) Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
