// Package tinylog is a minimal process-wide logging facility built around
// two orthogonal concepts: a [Channel], which describes what kind of message
// is being logged, and a numeric verbosity level, which describes how chatty
// the message is.
//
// A message is emitted only when the global verbosity threshold is at least
// the level it was logged at. Emitted lines are prefixed with the channel's
// color-coded name and written to the channel's bound [Sink].
//
// Typical usage logs through the package-level default logger:
//
//	tinylog.SetVerbosity(1)
//
//	tinylog.Log(tinylog.ChannelNotice, 0, "startup complete") // Emitted.
//	tinylog.Log(tinylog.ChannelDebug, 2, "cache state dump")  // Suppressed.
//
// # Channels
//
// There are seven channels: [ChannelCritical], [ChannelError],
// [ChannelWarning], [ChannelNotice], [ChannelInfo], [ChannelDebug], and
// [ChannelTrace]. Channel order carries no severity semantics; severity is
// expressed entirely by the level passed to [Log]. Each channel has a
// configurable label color and output sink:
//
//	tinylog.ChannelNotice.SetColor(ansi.Blue)
//	tinylog.ChannelInfo.SetStream(tinylog.NewSink(&buf))
//
// All channels start bound to one shared stdout sink, so their output
// interleaves safely through a single handle. Color can be toggled globally
// with [EnableColor] and [DisableColor]; disabling it is useful when logging
// to a file or buffer.
//
// # Loggers
//
// The package-level functions delegate to a lazily initialized default
// returned by [Default]. An explicit [Logger] can be constructed instead,
// which is what tests and embedded uses typically want:
//
//	var buf bytes.Buffer
//
//	logger := tinylog.NewLogger(
//		tinylog.WithOutput(&buf),
//		tinylog.WithVerbosity(2),
//		tinylog.WithColorEnabled(false),
//	)
//	logger.Log(tinylog.ChannelInfo, 0, "hello") // buf now holds "Info: hello\n".
//
// Logging never fails: write errors are swallowed, a channel with no bound
// sink silently drops messages, and a missing color falls back to white.
//
// A [Publisher] fans rendered lines out to subscribers, which is useful for
// displaying live output inside a Bubble Tea TUI:
//
//	pub := tinylog.NewPublisher()
//	logger := tinylog.NewLogger(tinylog.WithSink(tinylog.NewSink(pub)))
//
//	sub := pub.Subscribe()
//	go func() {
//	    for line := range sub.C() {
//	        // Deliver line to the TUI.
//	    }
//	}()
//
// [Config] integrates verbosity and color-mode selection with CLI flags via
// [github.com/spf13/pflag] and shell completion via [github.com/spf13/cobra].
package tinylog
