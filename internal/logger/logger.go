// Package logger builds the process-wide zerolog logger from validated config.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level          string `mapstructure:"level" json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format         string `mapstructure:"format" json:"format,omitempty" validate:"oneof=json console"`
	TimeField      string `mapstructure:"time_field" json:"timeField,omitempty"`
	ServiceName    string `mapstructure:"service_name" json:"serviceName,omitempty"`
	ServiceVersion string `mapstructure:"service_version" json:"serviceVersion,omitempty"`
	Env            string `mapstructure:"env" json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller     bool   `mapstructure:"with_caller" json:"withCaller,omitempty"`
}

// New validates the config and returns a ready logger. JSON goes to stdout
// for machine consumption; console format writes human output to stderr.
func New(cfg *LoggerConfig) (zerolog.Logger, error) {
	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField

	var writer io.Writer = os.Stdout
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.ServiceName == "" {
		c.ServiceName = "cricket-scoring-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
}
