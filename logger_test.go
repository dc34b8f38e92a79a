package tinylog_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/tinylog"
)

// newBufferLogger creates a color-disabled logger writing every channel to a
// shared buffer.
func newBufferLogger(buf *bytes.Buffer, opts ...tinylog.Option) *tinylog.Logger {
	opts = append([]tinylog.Option{
		tinylog.WithOutput(buf),
		tinylog.WithColorEnabled(false),
	}, opts...)

	return tinylog.NewLogger(opts...)
}

func TestLogThresholdGating(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		threshold tinylog.Level
		level     tinylog.Level
		emitted   bool
	}{
		"level below threshold": {
			threshold: 1,
			level:     0,
			emitted:   true,
		},
		"level equals threshold": {
			threshold: 1,
			level:     1,
			emitted:   true,
		},
		"level above threshold": {
			threshold: 1,
			level:     2,
			emitted:   false,
		},
		"zero level at zero threshold": {
			threshold: 0,
			level:     0,
			emitted:   true,
		},
		"negative threshold suppresses zero level": {
			threshold: -1,
			level:     0,
			emitted:   false,
		},
		"negative threshold passes equally negative level": {
			threshold: -1,
			level:     -1,
			emitted:   true,
		},
		"negative level below negative threshold": {
			threshold: -1,
			level:     -2,
			emitted:   true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := newBufferLogger(&buf, tinylog.WithVerbosity(tc.threshold))
			logger.Log(tinylog.ChannelInfo, tc.level, "x")

			if tc.emitted {
				assert.Equal(t, "Info: x\n", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLogScenarioA(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newBufferLogger(&buf, tinylog.WithVerbosity(1))

	logger.Log(tinylog.ChannelWarning, 1, "x") // Emitted.
	logger.Log(tinylog.ChannelError, 2, "y")   // Suppressed.

	assert.Equal(t, "Warning: x\n", buf.String())
}

func TestLogScenarioB(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := tinylog.NewLogger(
		tinylog.WithVerbosity(1),
		tinylog.WithColorEnabled(false),
	)
	logger.SetStream(tinylog.ChannelInfo, tinylog.NewSink(&buf))

	logger.Log(tinylog.ChannelInfo, 0, "hello")

	assert.Equal(t, "Info: hello\n", buf.String())
}

func TestSetColorRoundTrip(t *testing.T) {
	t.Parallel()

	logger := tinylog.NewLogger()
	logger.SetColor(tinylog.ChannelCritical, ansi.BrightMagenta)

	assert.Equal(t, ansi.BrightMagenta, logger.Color(tinylog.ChannelCritical))
}

func TestDefaultColors(t *testing.T) {
	t.Parallel()

	logger := tinylog.NewLogger()

	tcs := map[string]struct {
		channel tinylog.Channel
		want    tinylog.Color
	}{
		"critical": {channel: tinylog.ChannelCritical, want: ansi.Red},
		"error":    {channel: tinylog.ChannelError, want: ansi.BrightRed},
		"warning":  {channel: tinylog.ChannelWarning, want: ansi.Yellow},
		"notice":   {channel: tinylog.ChannelNotice, want: ansi.Blue},
		"info":     {channel: tinylog.ChannelInfo, want: ansi.Green},
		"debug":    {channel: tinylog.ChannelDebug, want: ansi.BrightBlack},
		"trace":    {channel: tinylog.ChannelTrace, want: ansi.Cyan},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, logger.Color(tc.channel))
		})
	}
}

func TestColorFallback(t *testing.T) {
	t.Parallel()

	// A zero-value Logger has no configured palette; lookups must still
	// succeed.
	var logger tinylog.Logger

	assert.Equal(t, tinylog.DefaultColor, logger.Color(tinylog.ChannelNotice))
}

func TestZeroValueLoggerDropsMessages(t *testing.T) {
	t.Parallel()

	var logger tinylog.Logger

	// No sink is bound; Log must be a silent no-op, not a panic.
	logger.Log(tinylog.ChannelInfo, 0, "dropped")
	assert.Equal(t, tinylog.Level(0), logger.Verbosity())
}

func TestChannelIsolation(t *testing.T) {
	t.Parallel()

	t.Run("stream rebinding", func(t *testing.T) {
		t.Parallel()

		var infoBuf, warnBuf bytes.Buffer

		logger := tinylog.NewLogger(tinylog.WithColorEnabled(false))
		logger.SetStream(tinylog.ChannelInfo, tinylog.NewSink(&infoBuf))
		logger.SetStream(tinylog.ChannelWarning, tinylog.NewSink(&warnBuf))

		// Rebinding Info must not disturb Warning's sink.
		logger.SetStream(tinylog.ChannelInfo, tinylog.NewSink(&infoBuf))

		logger.Log(tinylog.ChannelInfo, 0, "a")
		logger.Log(tinylog.ChannelWarning, 0, "b")

		assert.Equal(t, "Info: a\n", infoBuf.String())
		assert.Equal(t, "Warning: b\n", warnBuf.String())
	})

	t.Run("color reconfiguration", func(t *testing.T) {
		t.Parallel()

		logger := tinylog.NewLogger()
		logger.SetColor(tinylog.ChannelInfo, ansi.Magenta)

		assert.Equal(t, ansi.Magenta, logger.Color(tinylog.ChannelInfo))
		assert.Equal(t, ansi.Yellow, logger.Color(tinylog.ChannelWarning),
			"another channel's color should be untouched")
	})
}

func TestUnboundChannelDropsSilently(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newBufferLogger(&buf)
	logger.SetStream(tinylog.ChannelDebug, nil)

	logger.Log(tinylog.ChannelDebug, 0, "into the void")
	logger.Log(tinylog.ChannelInfo, 0, "still works")

	assert.Equal(t, "Info: still works\n", buf.String())
}

func TestColorToggle(t *testing.T) {
	t.Parallel()

	t.Run("disabled yields plain name", func(t *testing.T) {
		t.Parallel()

		logger := tinylog.NewLogger(tinylog.WithColorEnabled(false))
		logger.SetColor(tinylog.ChannelWarning, ansi.Red)

		assert.Equal(t, "Warning", logger.PaintedName(tinylog.ChannelWarning))
	})

	t.Run("enabled yields styled name", func(t *testing.T) {
		t.Parallel()

		logger := tinylog.NewLogger()

		painted := logger.PaintedName(tinylog.ChannelWarning)
		assert.NotEqual(t, "Warning", painted)
		assert.Contains(t, painted, "Warning")
		assert.True(t, strings.HasPrefix(painted, "\x1b["),
			"painted name should start with an SGR escape sequence")
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		logger := tinylog.NewLogger()

		logger.DisableColor()
		logger.DisableColor()
		assert.False(t, logger.ColorEnabled())

		logger.EnableColor()
		logger.EnableColor()
		assert.True(t, logger.ColorEnabled())
	})
}

func TestCustomRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := tinylog.NewLogger(
		tinylog.WithOutput(&buf),
		tinylog.WithRenderer(bracketRenderer{}),
	)

	logger.Log(tinylog.ChannelTrace, 0, "step")

	assert.Equal(t, "[Trace]: step\n", buf.String())
}

// bracketRenderer decorates labels with brackets instead of color codes.
type bracketRenderer struct{}

func (bracketRenderer) Paint(s string, _ tinylog.Color) string {
	return "[" + s + "]"
}

func TestSetVerbosity(t *testing.T) {
	t.Parallel()

	logger := tinylog.NewLogger()
	assert.Equal(t, tinylog.Level(0), logger.Verbosity())

	logger.SetVerbosity(3)
	assert.Equal(t, tinylog.Level(3), logger.Verbosity())

	logger.SetVerbosity(-2)
	assert.Equal(t, tinylog.Level(-2), logger.Verbosity())
}

func TestSharedSinkFanIn(t *testing.T) {
	t.Parallel()

	t.Run("sequential", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		sink := tinylog.NewSink(&buf)

		logger := tinylog.NewLogger(tinylog.WithColorEnabled(false))
		logger.SetStream(tinylog.ChannelInfo, sink)
		logger.SetStream(tinylog.ChannelWarning, sink)

		logger.Log(tinylog.ChannelInfo, 0, "first")
		logger.Log(tinylog.ChannelWarning, 0, "second")

		assert.Equal(t, "Info: first\nWarning: second\n", buf.String())
	})

	t.Run("concurrent", func(t *testing.T) {
		t.Parallel()

		const perChannel = 50

		var buf bytes.Buffer

		logger := newBufferLogger(&buf)

		var wg sync.WaitGroup

		for _, ch := range tinylog.Channels() {
			wg.Go(func() {
				for i := range perChannel {
					logger.Log(ch, 0, fmt.Sprintf("msg-%d", i))
				}
			})
		}

		wg.Wait()

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, len(tinylog.Channels())*perChannel)

		// Every line must be intact: "<Channel>: msg-<n>" with no byte
		// interleaving.
		for _, line := range lines {
			name, msg, ok := strings.Cut(line, ": ")
			require.True(t, ok, "malformed line: %q", line)

			_, err := tinylog.ParseChannel(name)
			require.NoError(t, err, "malformed channel in line: %q", line)
			assert.True(t, strings.HasPrefix(msg, "msg-"), "malformed message in line: %q", line)
		}
	})
}

func TestConcurrentReconfiguration(t *testing.T) {
	t.Parallel()

	var buf, debugBuf bytes.Buffer

	logger := newBufferLogger(&buf)

	var wg sync.WaitGroup

	// Writers on every registry while emissions are in flight. The Debug
	// rebinds target their own buffer so no two sinks share a writer.
	wg.Go(func() {
		for i := range 100 {
			logger.SetVerbosity(tinylog.Level(i % 3))
		}
	})
	wg.Go(func() {
		for range 100 {
			logger.SetColor(tinylog.ChannelInfo, ansi.Magenta)
		}
	})
	wg.Go(func() {
		for range 100 {
			logger.SetStream(tinylog.ChannelDebug, tinylog.NewSink(&debugBuf))
		}
	})
	wg.Go(func() {
		for range 100 {
			logger.DisableColor()
			logger.EnableColor()
		}
	})

	for range 4 {
		wg.Go(func() {
			for i := range 100 {
				logger.Log(tinylog.ChannelInfo, tinylog.Level(i%3), "concurrent")
			}
		})
	}

	wg.Wait()
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	// All package-level state lives on one shared default, so this test
	// exercises it sequentially and restores what it changes.
	require.Same(t, tinylog.Default(), tinylog.Default())

	var buf bytes.Buffer

	tinylog.ChannelNotice.SetStream(tinylog.NewSink(&buf))

	tinylog.SetVerbosity(1)
	defer tinylog.SetVerbosity(0)

	tinylog.DisableColor()
	defer tinylog.EnableColor()

	assert.Equal(t, tinylog.Level(1), tinylog.Verbosity())
	assert.False(t, tinylog.ColorEnabled())

	tinylog.Log(tinylog.ChannelNotice, 1, "through the default")
	tinylog.Log(tinylog.ChannelNotice, 2, "suppressed")

	assert.Equal(t, "Notice: through the default\n", buf.String())

	tinylog.ChannelNotice.SetColor(ansi.BrightBlue)
	defer tinylog.ChannelNotice.SetColor(ansi.Blue)

	assert.Equal(t, ansi.BrightBlue, tinylog.ChannelNotice.Color())
	assert.Equal(t, "Notice", tinylog.ChannelNotice.PaintedName(),
		"painted name should be plain while color is disabled")
}
