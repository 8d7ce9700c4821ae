package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API         APIConfig
	Credentials CredentialsConfig
}

type APIConfig struct {
	// BaseURL, when set, overrides base-address derivation entirely.
	BaseURL string `env:"API_URL"`
	// Origin is the address the dashboard itself is reached on; the backend
	// address is derived from it by swapping the port and appending /api.
	Origin string `env:"APP_ORIGIN,   default=http://localhost:3000"`
	// BackendPort is the port substituted into Origin during derivation.
	BackendPort string `env:"BACKEND_PORT, default=5000"`
}

type CredentialsConfig struct {
	// Dir overrides where the credential file lives. Empty means the
	// user config directory.
	Dir string `env:"CREDENTIALS_DIR"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
