package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the ambient output settings shared by every subcommand.
type Settings struct {
	// NoColor disables colored output and syntax highlighting.
	NoColor bool `env:"NO_COLOR"`
	// Pretty re-indents JSON response bodies.
	Pretty bool `env:"PRETTY" envDefault:"true"`
	// Verbose logs request diagnostics to stderr.
	Verbose bool `env:"VERBOSE"`
}

// EnvPrefix is prepended to every variable name in Settings.
const EnvPrefix = "HITPIE_"

// DefaultSettings returns the settings used when no variables are set.
func DefaultSettings() *Settings {
	return &Settings{Pretty: true}
}

// Load reads Settings from the process environment.
func Load() (*Settings, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads Settings from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (*Settings, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (*Settings, error) {
	s, err := env.ParseAsWithOptions[Settings](opts)
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &s, nil
}
