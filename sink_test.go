package tinylog_test

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/tinylog"
)

func TestSinkFlushesBufferedWriters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	bw := bufio.NewWriterSize(&buf, 4096)

	logger := tinylog.NewLogger(
		tinylog.WithSink(tinylog.NewSink(bw)),
		tinylog.WithColorEnabled(false),
	)
	logger.Log(tinylog.ChannelInfo, 0, "flushed")

	// Without the per-emission flush this would still be sitting in bw.
	assert.Equal(t, "Info: flushed\n", buf.String())
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSinkSwallowsWriteErrors(t *testing.T) {
	t.Parallel()

	logger := tinylog.NewLogger(tinylog.WithOutput(failingWriter{}))

	// Must not panic or surface the error.
	logger.Log(tinylog.ChannelError, 0, "lost")
}

// failingFlusher accepts writes but rejects flushes.
type failingFlusher struct {
	buf bytes.Buffer
}

func (f *failingFlusher) Write(b []byte) (int, error) {
	return f.buf.Write(b)
}

func (f *failingFlusher) Flush() error {
	return errors.New("pipe closed")
}

func TestSinkSwallowsFlushErrors(t *testing.T) {
	t.Parallel()

	fw := &failingFlusher{}

	logger := tinylog.NewLogger(
		tinylog.WithOutput(fw),
		tinylog.WithColorEnabled(false),
	)
	logger.Log(tinylog.ChannelWarning, 0, "kept")

	assert.Equal(t, "Warning: kept\n", fw.buf.String())
}

func TestNilSinkIsInert(t *testing.T) {
	t.Parallel()

	var s *tinylog.Sink

	logger := tinylog.NewLogger(tinylog.WithColorEnabled(false))
	logger.SetStream(tinylog.ChannelInfo, s)

	// A nil sink behaves like an unbound channel.
	logger.Log(tinylog.ChannelInfo, 0, "dropped")
}
