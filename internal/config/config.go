// FILE: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
)

var validate = validator.New()

// Config is the interpreter configuration, read from the environment and
// overridden by command-line flags.
type Config struct {
	LogLevel    string `env:"SILVERPOINT_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	HistoryFile string `env:"SILVERPOINT_HISTORY_FILE" envDefault:".silverpoint_history"`
	Color       bool   `env:"SILVERPOINT_COLOR" envDefault:"true"`
	DemoDepth   int    `env:"SILVERPOINT_DEMO_DEPTH" envDefault:"3" validate:"min=1,max=6"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads and validates the configuration
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validate config: %w", err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}

// Level is the zap level named by LogLevel
func (c Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}
