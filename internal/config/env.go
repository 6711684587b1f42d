package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig is the environment configuration of `pomo serve`
type ServerConfig struct {
	AuthorizedKeys string `env:"POMO_SSH_AUTHORIZED_KEYS"`
	DefaultUser    string `env:"POMO_DEFAULT_USER" envDefault:"default"`
	HTTPAddr       string `env:"POMO_HTTP_ADDR"    envDefault:":8080"`
	HostKeyPath    string `env:"POMO_SSH_HOST_KEY"`
	SSHAddr        string `env:"POMO_SSH_ADDR"`
}

// ParseEnv reads environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
