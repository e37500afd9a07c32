// Package httpserver provides a minimal TCP transport for wind
// applications: an accept loop, a request-line/header parser producing
// [wind.Request] values, and a [wind.Connection] adapter over net.Conn. One
// request is served per connection; the responder closes it when done.
package httpserver

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the server settings, parsed from the environment.
type Config struct {
	Addr        string        `env:"WIND_ADDR" envDefault:"127.0.0.1:9000"`
	LogLevel    zapcore.Level `env:"WIND_LOG_LEVEL" envDefault:"info"`
	ReadTimeout time.Duration `env:"WIND_READ_TIMEOUT" envDefault:"10s"`
}

// ConfigFromEnv parses the WIND_* environment variables.
func ConfigFromEnv() (cfg Config, err error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse environment")
	}

	return cfg, nil
}

// NewLogger creates a JSON-encoding zap logger at the configured level.
func NewLogger(cfg Config) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return c.Build()
}
