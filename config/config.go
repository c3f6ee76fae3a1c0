package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of the command line driver.
type Config struct {
	// Seed fixes the deal. Zero seeds from the clock.
	Seed     int64  `env:"DAIDI_SEED,default=0"`
	LogLevel string `env:"DAIDI_LOG_LEVEL,default=info"`
	LogDev   bool   `env:"DAIDI_LOG_DEV,default=false"`
	NoColor  bool   `env:"DAIDI_NO_COLOR,default=false"`
	MaxTurns int    `env:"DAIDI_MAX_TURNS,default=1000"`
}

// Default is the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{LogLevel: "info", MaxTurns: 1000}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("DAIDI_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid DAIDI_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds the zap logger described by the configuration.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
