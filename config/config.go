// Package config loads the client configuration from the environment,
// with a best-effort .env file for local development.
package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// NodeURL is the JSON-RPC endpoint of the geth node. The node must
	// expose the personal API for login and registration to work.
	NodeURL string `env:"NODE_URL" envDefault:"http://127.0.0.1:8545"`
	// ContractAddress is the deployed estate agency contract.
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// UnlockDurationSec is how long personal_unlockAccount keeps an
	// account unlocked, in seconds.
	UnlockDurationSec uint64 `env:"UNLOCK_DURATION_SEC" envDefault:"300"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
