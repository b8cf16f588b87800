package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains the process configuration. Flags parsed in cmd may
// override individual fields after loading.
type Config struct {
	BaseURL  string        `env:"CONTACTS_BASE_URL" envDefault:"http://146.59.52.68:11235"`
	APIKey   string        `env:"CONTACTS_API_KEY"`
	LogLevel string        `env:"CONTACTS_LOG_LEVEL" envDefault:"info"`
	Timeout  time.Duration `env:"CONTACTS_HTTP_TIMEOUT" envDefault:"30s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
