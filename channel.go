package tinylog

import (
	"errors"
	"strings"
)

// Channel identifies a category of log message. Channels select the label
// color and output sink of a message; they carry no severity ordering of
// their own.
type Channel int

const (
	// ChannelCritical is for messages about unrecoverable failures.
	ChannelCritical Channel = iota
	// ChannelError is for messages about recoverable errors.
	ChannelError
	// ChannelWarning is for messages about suspicious conditions.
	ChannelWarning
	// ChannelNotice is for notable operational messages.
	ChannelNotice
	// ChannelInfo is for routine informational messages.
	ChannelInfo
	// ChannelDebug is for messages aimed at developers.
	ChannelDebug
	// ChannelTrace is for fine-grained execution traces.
	ChannelTrace
)

// channelNames maps each channel to its display tag, in declaration order.
var channelNames = [...]string{
	ChannelCritical: "Critical",
	ChannelError:    "Error",
	ChannelWarning:  "Warning",
	ChannelNotice:   "Notice",
	ChannelInfo:     "Info",
	ChannelDebug:    "Debug",
	ChannelTrace:    "Trace",
}

// ErrUnknownChannel indicates an unrecognized channel name string.
var ErrUnknownChannel = errors.New("unknown channel")

// String returns the channel's display tag, e.g. "Warning".
func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return "Unknown"
	}

	return channelNames[c]
}

// ParseChannel parses a channel name string, case-insensitively, and returns
// the corresponding [Channel].
func ParseChannel(name string) (Channel, error) {
	for ch, n := range channelNames {
		if strings.EqualFold(name, n) {
			return Channel(ch), nil
		}
	}

	return 0, ErrUnknownChannel
}

// Channels returns all channels in declaration order.
func Channels() []Channel {
	chs := make([]Channel, len(channelNames))
	for i := range channelNames {
		chs[i] = Channel(i)
	}

	return chs
}

// ChannelStrings returns the lowercase names of all channels, in declaration
// order. Use with [github.com/spf13/cobra.FixedCompletions] or to enumerate
// configuration keys.
func ChannelStrings() []string {
	names := make([]string, len(channelNames))
	for i, n := range channelNames {
		names[i] = strings.ToLower(n)
	}

	return names
}

// Color returns the channel's configured label color on the [Default]
// logger, or the white fallback if none is configured.
func (c Channel) Color() Color {
	return Default().Color(c)
}

// SetColor sets the channel's label color on the [Default] logger.
// It takes effect for subsequent emissions only.
func (c Channel) SetColor(col Color) {
	Default().SetColor(c, col)
}

// SetStream rebinds the channel to the given sink on the [Default] logger.
// Multiple channels may share one sink; their writes serialize through the
// sink's own lock.
func (c Channel) SetStream(s *Sink) {
	Default().SetStream(c, s)
}

// PaintedName returns the channel's display tag decorated with its
// configured color on the [Default] logger, or the plain tag when color is
// globally disabled.
func (c Channel) PaintedName() string {
	return Default().PaintedName(c)
}
