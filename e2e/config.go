package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SERVER_ADDR is the base URL of a running server, e.g. http://localhost:8080
	ServerAddr string `envconfig:"SERVER_ADDR"`
	// HEALTH_ADDR is the gRPC health endpoint, e.g. localhost:9090
	HealthAddr string `envconfig:"HEALTH_ADDR"`
	// E2E_DEBUG_JSON dumps full HTTP response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
