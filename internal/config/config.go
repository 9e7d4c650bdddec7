package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/harmony"
)

// Settings are read from the environment. Command line flags take
// precedence over all of them.
type Settings struct {
	Colour      string `env:"PALETTE_COLOUR" envDefault:"#E83285"`
	Style       string `env:"PALETTE_STYLE" envDefault:"shades"`
	LogLevel    string `env:"PALETTE_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"PALETTE_LOG_FILE,expand"`
	SwatchWidth int    `env:"PALETTE_SWATCH_WIDTH" envDefault:"30"`
}

// Load parses the environment and checks that the default colour is
// usable. An unknown style isn't an error, it just means shades.
func Load() (*Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}
	if _, err := colour.ParseColour(s.Colour); err != nil {
		return nil, errors.Wrap(err, "PALETTE_COLOUR")
	}
	if s.SwatchWidth < 0 {
		return nil, errors.Errorf("PALETTE_SWATCH_WIDTH must not be negative, got %d",
			s.SwatchWidth)
	}
	return &s, nil
}

// DefaultStyle resolves the configured style tag.
func (s *Settings) DefaultStyle() harmony.Style {
	return harmony.ParseStyle(s.Style)
}
