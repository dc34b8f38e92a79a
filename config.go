package tinylog

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// ColorMode selects how the global color toggle is decided at startup.
type ColorMode string

const (
	// ColorModeAuto enables color only when stdout is a terminal.
	ColorModeAuto ColorMode = "auto"
	// ColorModeAlways enables color unconditionally.
	ColorModeAlways ColorMode = "always"
	// ColorModeNever disables color unconditionally.
	ColorModeNever ColorMode = "never"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownColorMode indicates an unrecognized color mode string.
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// ParseColorMode parses a color mode string and returns the corresponding
// [ColorMode].
func ParseColorMode(mode string) (ColorMode, error) {
	switch ColorMode(mode) {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
		return ColorMode(mode), nil
	}

	return "", ErrUnknownColorMode
}

// ColorModeStrings returns all valid color mode strings.
func ColorModeStrings() []string {
	return []string{
		string(ColorModeAuto),
		string(ColorModeAlways),
		string(ColorModeNever),
	}
}

// Flags holds CLI flag names for logging configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Verbosity string
	Color     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Color: string(ColorModeAuto),
		Flags: f,
	}
}

// Config holds CLI flag values for logging configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Apply] to apply the values to a
// [Logger].
type Config struct {
	Verbosity int
	Color     string
	Flags     Flags
}

// NewConfig returns a new [Config] with default flag names, verbosity 0,
// and automatic color selection. Use [Config.RegisterFlags] to add CLI
// flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Verbosity: "verbosity",
		Color:     "color",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Verbosity, c.Flags.Verbosity, c.Verbosity,
		"global verbosity threshold; messages logged above it are suppressed")
	flags.StringVar(&c.Color, c.Flags.Color, c.Color,
		fmt.Sprintf("color mode, one of: %s", ColorModeStrings()))
}

// RegisterCompletions registers shell completions for logging flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(ColorModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering color completion: %w", err)
	}

	return nil
}

// Apply sets l's verbosity threshold and color toggle from the values
// stored in c. [ColorModeAuto] enables color only when stdout is a
// terminal.
func (c *Config) Apply(l *Logger) error {
	mode, err := ParseColorMode(c.Color)
	if err != nil {
		return fmt.Errorf("%w: %w: %q", ErrInvalidArgument, err, c.Color)
	}

	l.SetVerbosity(Level(c.Verbosity))

	switch mode {
	case ColorModeAlways:
		l.EnableColor()
	case ColorModeNever:
		l.DisableColor()
	case ColorModeAuto:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			l.EnableColor()
		} else {
			l.DisableColor()
		}
	}

	return nil
}
