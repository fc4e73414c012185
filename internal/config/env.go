package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "CODEINTEL"

// EnvOverrides holds settings read from the environment. Empty values
// leave the file config untouched.
type EnvOverrides struct {
	// Env: CODEINTEL_PORT
	Port int `envconfig:"PORT"`
	// Env: CODEINTEL_LISTEN_ADDRESS
	ListenAddress string `envconfig:"LISTEN_ADDRESS"`
	// Env: CODEINTEL_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`
	// Env: CODEINTEL_PRECISE_URL
	PreciseURL string `envconfig:"PRECISE_URL"`
	// Env: CODEINTEL_BASIC_URL
	BasicURL string `envconfig:"BASIC_URL"`
	// Env: CODEINTEL_DARK_COLOR
	DarkColor string `envconfig:"DARK_COLOR"`
	// Env: CODEINTEL_LIGHT_COLOR
	LightColor string `envconfig:"LIGHT_COLOR"`
}

// LoadEnv reads overrides from the environment.
func LoadEnv() (*EnvOverrides, error) {
	var e EnvOverrides
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return &e, nil
}

// Apply copies every non-empty override into cfg.
func (e *EnvOverrides) Apply(cfg *Config) {
	if e.Port != 0 {
		cfg.Server.Port = e.Port
	}
	if e.ListenAddress != "" {
		cfg.Server.ListenAddress = e.ListenAddress
	}
	if e.LogLevel != "" {
		cfg.Server.LogLevel = types.LogLevel(e.LogLevel)
	}
	if e.PreciseURL != "" {
		cfg.Links.PreciseURL = e.PreciseURL
	}
	if e.BasicURL != "" {
		cfg.Links.BasicURL = e.BasicURL
	}
	if e.DarkColor != "" {
		cfg.Icon.DarkColor = icon.Color(e.DarkColor)
	}
	if e.LightColor != "" {
		cfg.Icon.LightColor = icon.Color(e.LightColor)
	}
}

// ApplyEnv loads environment overrides and applies them to cfg.
func ApplyEnv(cfg *Config) error {
	e, err := LoadEnv()
	if err != nil {
		return err
	}
	e.Apply(cfg)
	return nil
}

// LoadWithEnv loads the config file and layers environment overrides on top.
// The result is not validated.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
