package tinylog

import (
	"errors"
	"maps"
	"slices"

	"github.com/charmbracelet/x/ansi"
)

// Color is a terminal color usable as a channel label color. The sixteen
// basic ANSI colors ([ansi.Black] through [ansi.BrightWhite]) cover the
// defaults; any [ansi.Color] works.
type Color = ansi.Color

// DefaultColor is the fallback label color for channels with no configured
// color. Lookups never fail; they resolve to this instead.
const DefaultColor = ansi.White

// defaultColors returns the initial channel palette.
func defaultColors() map[Channel]Color {
	return map[Channel]Color{
		ChannelCritical: ansi.Red,
		ChannelError:    ansi.BrightRed,
		ChannelWarning:  ansi.Yellow,
		ChannelNotice:   ansi.Blue,
		ChannelInfo:     ansi.Green,
		ChannelDebug:    ansi.BrightBlack,
		ChannelTrace:    ansi.Cyan,
	}
}

// ErrUnknownColor indicates an unrecognized color name string.
var ErrUnknownColor = errors.New("unknown color")

var colorNames = map[string]Color{
	"black":          ansi.Black,
	"red":            ansi.Red,
	"green":          ansi.Green,
	"yellow":         ansi.Yellow,
	"blue":           ansi.Blue,
	"magenta":        ansi.Magenta,
	"cyan":           ansi.Cyan,
	"white":          ansi.White,
	"bright-black":   ansi.BrightBlack,
	"bright-red":     ansi.BrightRed,
	"bright-green":   ansi.BrightGreen,
	"bright-yellow":  ansi.BrightYellow,
	"bright-blue":    ansi.BrightBlue,
	"bright-magenta": ansi.BrightMagenta,
	"bright-cyan":    ansi.BrightCyan,
	"bright-white":   ansi.BrightWhite,
}

// ParseColor parses a basic ANSI color name such as "yellow" or
// "bright-red" and returns the corresponding [Color].
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return nil, ErrUnknownColor
	}

	return c, nil
}

// ColorStrings returns the names accepted by [ParseColor], sorted.
func ColorStrings() []string {
	return slices.Sorted(maps.Keys(colorNames))
}

// Renderer decorates a channel label with a color. Implementations must be
// side-effect-free; the emission path may call Paint for messages that are
// never written.
//
// The core never depends on a specific styling mechanism beyond this
// interface, so swapping renderers (including a no-op one) changes no other
// component.
type Renderer interface {
	Paint(s string, c Color) string
}

// sgrRenderer styles labels with ANSI SGR escape sequences.
type sgrRenderer struct{}

func (sgrRenderer) Paint(s string, c Color) string {
	return ansi.Style{}.ForegroundColor(c).Styled(s)
}
