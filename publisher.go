package tinylog

import (
	"strings"
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 64

// Publisher is a sink target that fans out rendered log lines to
// subscribers. Bind one with NewSink(pub) to tail a channel's output, for
// example inside a TUI.
//
// Each emission arrives as one Write call holding a single
// newline-terminated line; the newline is stripped and the line delivered
// to every active [Subscription] via a buffered channel with ring-buffer
// semantics: when a subscriber's channel is full the oldest line is dropped
// so the logging path never blocks on a slow consumer. Safe for concurrent
// use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subscribers []*Subscription
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64 lines.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the per-subscription line buffer size.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n < 1 {
			n = 1
		}

		p.bufSize = n
	}
}

// Write delivers one rendered log line to all active subscribers, stripping
// the trailing newline. When a subscriber's channel is full the oldest line
// is dropped to make room; both the drop and the retry are non-blocking, so
// a consumer draining concurrently can never wedge the logging path. Closed
// subscriptions are compacted out of the subscriber list. Write always
// returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return len(b), nil
	}

	// The string conversion copies, so subscribers never alias b.
	line := strings.TrimSuffix(string(b), "\n")

	// Compact closed subscriptions and deliver in one pass.
	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}
		// Ring-buffer: drop the oldest and retry. Neither step may
		// block; the consumer can drain the channel between them.
		select {
		case sub.ch <- line:
		default:
			select {
			case <-sub.ch:
			default:
			}

			select {
			case sub.ch <- line:
			default:
			}
		}

		alive = append(alive, sub)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(p.subscribers); i++ {
		p.subscribers[i] = nil
	}

	p.subscribers = alive

	return len(b), nil
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan string, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close marks the Publisher as closed, closes all subscription channels,
// and releases the subscriber list. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil

	return nil
}

// Subscription receives log lines from a [Publisher].
type Subscription struct {
	ch     chan string
	closed atomic.Bool
}

// C returns the read-only channel that delivers log lines, without their
// trailing newlines.
func (s *Subscription) C() <-chan string {
	return s.ch
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel on its next Write or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
