package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LaunchConfig contains the runner options read from the environment.
type LaunchConfig struct {
	TuningPath string   `env:"DIGIMORPH_TUNING"`
	Arena      string   `env:"DIGIMORPH_ARENA" envDefault:"arenas/training.tmx"`
	Debug      bool     `env:"DIGIMORPH_DEBUG"`
	Start      string   `env:"DIGIMORPH_START" envDefault:"agumon"`
	Roster     []string `env:"DIGIMORPH_ROSTER" envSeparator:"," envDefault:"agumon,gabumon,patamon"`
	Width      int      `env:"DIGIMORPH_WIDTH" envDefault:"640"`
	Height     int      `env:"DIGIMORPH_HEIGHT" envDefault:"360"`
}

// Launch is the global runner configuration.
var Launch LaunchConfig

// ParseLaunch loads LaunchConfig from environment variables.
func ParseLaunch() (LaunchConfig, error) {
	var lc LaunchConfig
	if err := env.Parse(&lc); err != nil {
		return lc, fmt.Errorf("parse env: %w", err)
	}
	return lc, nil
}
