package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/tinylog"
)

// settings is the YAML settings file accepted by --config, e.g.:
//
//	verbosity: 2
//	color: never
//	channels:
//	  warning: bright-yellow
//	  debug: magenta
type settings struct {
	Verbosity *int              `yaml:"verbosity"`
	Color     string            `yaml:"color"`
	Channels  map[string]string `yaml:"channels"`
}

func loadSettings(path string) (*settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s settings

	err = yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	return &s, nil
}

// apply layers the settings onto l. Absent fields leave the flag-derived
// configuration untouched.
func (s *settings) apply(l *tinylog.Logger) error {
	if s.Verbosity != nil {
		l.SetVerbosity(tinylog.Level(*s.Verbosity))
	}

	if s.Color != "" {
		mode, err := tinylog.ParseColorMode(s.Color)
		if err != nil {
			return fmt.Errorf("settings color: %w: %q", err, s.Color)
		}

		switch mode {
		case tinylog.ColorModeAlways:
			l.EnableColor()
		case tinylog.ColorModeNever:
			l.DisableColor()
		case tinylog.ColorModeAuto:
			// Keep whatever the flags decided.
		}
	}

	for name, colorName := range s.Channels {
		ch, err := tinylog.ParseChannel(name)
		if err != nil {
			return fmt.Errorf("settings channel %q: %w", name, err)
		}

		col, err := tinylog.ParseColor(colorName)
		if err != nil {
			return fmt.Errorf("settings channel %q: %w: %q", name, err, colorName)
		}

		l.SetColor(ch, col)
	}

	return nil
}
