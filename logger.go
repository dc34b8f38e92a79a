package tinylog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Level is a verbosity value. A message's level is its verbosity cost:
// lower levels are more likely to be shown. The global threshold is also a
// Level; a message is emitted iff threshold >= level. Negative values are
// permitted on both sides.
type Level int

// Logger holds the mutable logging state: the verbosity threshold, the
// per-channel color and stream registries, and the global color toggle.
// Each registry has its own lock, so configuration changes are not atomic
// as a group; a concurrent logger may observe a new threshold alongside an
// old color mapping.
//
// Create instances with [NewLogger], or use the package-level functions,
// which delegate to [Default]. The zero value is usable: no sinks are
// bound (so emission no-ops), color lookups fall back to [DefaultColor],
// and color is enabled.
type Logger struct {
	verbosityMu sync.RWMutex
	verbosity   Level

	colorsMu sync.RWMutex
	colors   map[Channel]Color

	streamsMu sync.RWMutex
	streams   map[Channel]*Sink

	// noColor is inverted so the zero value means "color enabled".
	noColor  atomic.Bool
	renderer Renderer
}

// Option configures a [Logger].
type Option func(*Logger)

// WithVerbosity sets the initial verbosity threshold.
func WithVerbosity(v Level) Option {
	return func(l *Logger) {
		l.verbosity = v
	}
}

// WithOutput binds every channel to a single new sink wrapping w, replacing
// the default stdout sink.
func WithOutput(w io.Writer) Option {
	return WithSink(NewSink(w))
}

// WithSink binds every channel to s, replacing the default stdout sink.
func WithSink(s *Sink) Option {
	return func(l *Logger) {
		for ch := range l.streams {
			l.streams[ch] = s
		}
	}
}

// WithRenderer sets the label color renderer.
func WithRenderer(r Renderer) Option {
	return func(l *Logger) {
		l.renderer = r
	}
}

// WithColorEnabled sets the initial state of the global color toggle.
func WithColorEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.noColor.Store(!enabled)
	}
}

// NewLogger creates a [Logger] with the default palette, verbosity 0, color
// enabled, and every channel bound to one shared stdout sink so that output
// from different channels interleaves through a single handle.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		colors:  defaultColors(),
		streams: make(map[Channel]*Sink, len(channelNames)),
	}

	console := NewSink(os.Stdout)
	for _, ch := range Channels() {
		l.streams[ch] = console
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// SetVerbosity overwrites the global verbosity threshold. No validation is
// performed; a negative threshold suppresses all messages except those
// logged at equally negative levels.
func (l *Logger) SetVerbosity(v Level) {
	l.verbosityMu.Lock()
	defer l.verbosityMu.Unlock()

	l.verbosity = v
}

// Verbosity returns the current verbosity threshold.
func (l *Logger) Verbosity() Level {
	l.verbosityMu.RLock()
	defer l.verbosityMu.RUnlock()

	return l.verbosity
}

// Color returns the configured label color for ch, or [DefaultColor] if
// none is configured. It never fails.
func (l *Logger) Color(ch Channel) Color {
	l.colorsMu.RLock()
	defer l.colorsMu.RUnlock()

	c, ok := l.colors[ch]
	if !ok {
		return DefaultColor
	}

	return c
}

// SetColor sets the label color for ch. It takes effect for subsequent
// emissions only; already-emitted output is unaffected.
func (l *Logger) SetColor(ch Channel, c Color) {
	l.colorsMu.Lock()
	defer l.colorsMu.Unlock()

	if l.colors == nil {
		l.colors = make(map[Channel]Color, len(channelNames))
	}

	l.colors[ch] = c
}

// SetStream rebinds ch to s, replacing any previous binding. Binding the
// same [Sink] to several channels serializes their output through one lock.
// A nil s unbinds the channel, after which its messages are silently
// dropped.
func (l *Logger) SetStream(ch Channel, s *Sink) {
	l.streamsMu.Lock()
	defer l.streamsMu.Unlock()

	if l.streams == nil {
		l.streams = make(map[Channel]*Sink, len(channelNames))
	}

	l.streams[ch] = s
}

// stream resolves the sink bound to ch. Absence is a valid state.
func (l *Logger) stream(ch Channel) *Sink {
	l.streamsMu.RLock()
	defer l.streamsMu.RUnlock()

	return l.streams[ch]
}

// EnableColor enables label coloring for all subsequent emissions.
// This is the default. Idempotent.
func (l *Logger) EnableColor() {
	l.noColor.Store(false)
}

// DisableColor disables label coloring for all subsequent emissions. Use
// this when logging to a file or buffer. Idempotent.
func (l *Logger) DisableColor() {
	l.noColor.Store(true)
}

// ColorEnabled reports whether label coloring is enabled.
func (l *Logger) ColorEnabled() bool {
	return !l.noColor.Load()
}

// PaintedName returns ch's display tag decorated with its configured color,
// or the plain tag when color is disabled.
func (l *Logger) PaintedName(ch Channel) string {
	name := ch.String()

	if !l.ColorEnabled() {
		return name
	}

	r := l.renderer
	if r == nil {
		r = sgrRenderer{}
	}

	return r.Paint(name, l.Color(ch))
}

// Log writes msg to ch's bound sink as "<painted name>: <msg>" followed by
// a newline, iff the current verbosity threshold is at least level.
//
// Log never fails and never blocks indefinitely: suppressed messages,
// channels with no bound sink, and write errors all result in the message
// being dropped silently.
func (l *Logger) Log(ch Channel, level Level, msg string) {
	if l.Verbosity() < level {
		return
	}

	s := l.stream(ch)
	if s == nil {
		return
	}

	s.emit(l.PaintedName(ch) + ": " + msg)
}

// defaultLogger lazily initializes the process-wide default on first use.
var defaultLogger = sync.OnceValue(func() *Logger { return NewLogger() })

// Default returns the process-wide default [Logger] used by the
// package-level functions and the [Channel] accessor methods.
func Default() *Logger {
	return defaultLogger()
}

// SetVerbosity overwrites the global verbosity threshold on the [Default]
// logger.
func SetVerbosity(v Level) {
	Default().SetVerbosity(v)
}

// Verbosity returns the current verbosity threshold of the [Default]
// logger.
func Verbosity() Level {
	return Default().Verbosity()
}

// EnableColor enables label coloring on the [Default] logger.
func EnableColor() {
	Default().EnableColor()
}

// DisableColor disables label coloring on the [Default] logger.
func DisableColor() {
	Default().DisableColor()
}

// ColorEnabled reports whether label coloring is enabled on the [Default]
// logger.
func ColorEnabled() bool {
	return Default().ColorEnabled()
}

// Log emits msg on the [Default] logger. See [Logger.Log].
func Log(ch Channel, level Level, msg string) {
	Default().Log(ch, level, msg)
}
