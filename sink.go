package tinylog

import (
	"io"
	"sync"
)

// flusher is implemented by writers that buffer, e.g. [bufio.Writer].
type flusher interface {
	Flush() error
}

// Sink is a shared, internally synchronized destination for rendered log
// lines. A single Sink may be bound to any number of channels; emissions
// from all of them serialize through its lock, so concurrent lines never
// interleave at the byte level. Relative ordering of concurrent emissions
// is unspecified.
//
// Create instances with [NewSink]. The zero value and nil are inert.
type Sink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewSink wraps w in a [Sink]. If w implements Flush, it is flushed after
// every emission.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// emit writes one rendered line plus a trailing newline and flushes, all
// under the sink's lock. Delivery is best-effort: write and flush errors
// are swallowed so logging can never abort the caller.
//
// The line and newline go out in a single Write call, so io.Writer sink
// targets such as [Publisher] always observe whole lines.
func (s *Sink) emit(line string) {
	if s == nil || s.w == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.w, line+"\n")

	if f, ok := s.w.(flusher); ok {
		_ = f.Flush()
	}
}
