package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/tinylog"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(settingsSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}

// settingsSchema describes the --config YAML file.
func settingsSchema() *jsonschema.Schema {
	colorEnum := toEnum(tinylog.ColorStrings())

	channelProps := make(map[string]*jsonschema.Schema, len(tinylog.ChannelStrings()))
	for _, name := range tinylog.ChannelStrings() {
		channelProps[name] = &jsonschema.Schema{
			Type: "string",
			Enum: colorEnum,
		}
	}

	falseSchema := func() *jsonschema.Schema {
		return &jsonschema.Schema{Not: &jsonschema.Schema{}}
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "logdemo settings",
		Description: "Verbosity, color mode, and per-channel colors for logdemo.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"verbosity": {
				Type:        "integer",
				Description: "Global verbosity threshold; messages logged above it are suppressed.",
			},
			"color": {
				Type:        "string",
				Description: "Color mode.",
				Enum:        toEnum(tinylog.ColorModeStrings()),
			},
			"channels": {
				Type:                 "object",
				Description:          "Per-channel label colors, keyed by channel name.",
				Properties:           channelProps,
				AdditionalProperties: falseSchema(),
			},
		},
		AdditionalProperties: falseSchema(),
	}
}

func toEnum(ss []string) []any {
	enum := make([]any, len(ss))
	for i, s := range ss {
		enum[i] = s
	}

	return enum
}
