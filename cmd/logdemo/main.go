// Command logdemo exercises the tinylog channels, colors, and streams.
//
// The default run sweeps every channel at a few verbosity levels so the
// effect of the --verbosity and --color flags is visible at a glance.
// An optional YAML settings file can override the verbosity, color mode,
// and per-channel colors.
//
// # Usage
//
//	logdemo [flags]
//	logdemo tail      render a live feed of demo log lines in a TUI
//	logdemo schema    print the JSON Schema for the settings file
//
// # Flags
//
//	--verbosity int   global verbosity threshold (default 0)
//	--color string    color mode, one of: auto, always, never (default "auto")
//	--config string   path to a YAML settings file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/tinylog"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := tinylog.NewConfig()

	var settingsPath string

	cmd := &cobra.Command{
		Use:           "logdemo",
		Short:         "Exercise the tinylog channels, colors, and streams",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := buildLogger(cfg, settingsPath)
			if err != nil {
				return err
			}

			emitSamples(logger)

			return nil
		},
	}

	cfg.RegisterFlags(cmd.PersistentFlags())

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	cmd.PersistentFlags().StringVar(&settingsPath, "config", "",
		"path to a YAML settings file")

	cmd.AddCommand(
		newTailCmd(cfg, &settingsPath),
		newSchemaCmd(),
	)

	return cmd
}

// buildLogger constructs a logger from flags, then layers the optional
// settings file on top.
func buildLogger(cfg *tinylog.Config, settingsPath string) (*tinylog.Logger, error) {
	logger := tinylog.NewLogger()

	err := cfg.Apply(logger)
	if err != nil {
		return nil, err
	}

	if settingsPath != "" {
		s, err := loadSettings(settingsPath)
		if err != nil {
			return nil, err
		}

		err = s.apply(logger)
		if err != nil {
			return nil, err
		}
	}

	return logger, nil
}

// emitSamples logs one message per channel at a spread of levels so the
// threshold cutoff is visible.
func emitSamples(logger *tinylog.Logger) {
	logger.Log(tinylog.ChannelCritical, 0, "unrecoverable failure example")
	logger.Log(tinylog.ChannelError, 0, "recoverable error example")
	logger.Log(tinylog.ChannelWarning, 1, "suspicious condition example")
	logger.Log(tinylog.ChannelNotice, 1, "notable event example")
	logger.Log(tinylog.ChannelInfo, 2, "routine progress example")
	logger.Log(tinylog.ChannelDebug, 3, "developer detail example")
	logger.Log(tinylog.ChannelTrace, 4, "fine-grained trace example")
}
