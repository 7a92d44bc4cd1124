// Package config holds process settings sourced from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Settings are the environment-derived knobs for mcpls.
type Settings struct {
	// RegistryPath points at an alternate server catalog file.
	// Empty means the embedded catalog.
	RegistryPath string `env:"MCPLS_REGISTRY"`

	// NoColor disables styled output when set to any value,
	// per the no-color.org convention.
	NoColor string `env:"NO_COLOR"`
}

// FromEnv parses Settings from process environment variables.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}

// ColorDisabled reports whether NO_COLOR was set.
func (s Settings) ColorDisabled() bool {
	return s.NoColor != ""
}
