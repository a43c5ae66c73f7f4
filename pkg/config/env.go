package config

import (
	"github.com/caarlos0/env/v11"
	"gitlab.com/tozd/go/errors"
)

// 🌱 Env holds the settings read from the environment
type Env struct {
	Root   string `env:"TABLERENAME_ROOT"`   // Overrides Config.Root
	Config string `env:"TABLERENAME_CONFIG"` // Config file used when --config is not given
	Debug  bool   `env:"TABLERENAME_DEBUG"`  // Enables debug logging
}

// ParseEnv reads Env from the process environment
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// ParseEnvFrom reads Env from vars instead of the process environment
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, errors.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Apply copies the environment overrides onto cfg
func (e Env) Apply(cfg *Config) {
	if e.Root != "" {
		cfg.Root = e.Root
	}
}
