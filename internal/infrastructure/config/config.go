package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/currency"
)

type Config struct {
	Server ServerConfig `envPrefix:"SERVER_"`
	OTLP   OTLPConfig   `envPrefix:"OTEL_"`
	Log    LogConfig    `envPrefix:"LOG_"`
	Store  StoreConfig  `envPrefix:"STORE_"`
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// DurationMsMetric adds a millisecond request duration histogram next to otelhttp's
	DurationMsMetric bool `env:"DURATION_MS_METRIC" envDefault:"false"`
}

type OTLPConfig struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"shopwave-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	// Enabled turns OTLP export on; when off, providers stay local and only /metrics is served
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

type LogConfig struct {
	Level slog.Level `env:"LEVEL" envDefault:"DEBUG"`
}

type StoreConfig struct {
	Currency currency.Unit `env:"CURRENCY" envDefault:"USD"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(currency.Unit{}): func(v string) (interface{}, error) {
				return currency.ParseISO(v)
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}
