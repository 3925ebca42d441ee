// Package diag collects the recoverable warnings emitted by the traversal
// engine. Nothing in this module throws: a failed navigation, coercion, or
// selector is recorded here as an event and the operation returns a
// degraded value.
//
// The sink is injectable so that callers can assert on recorded warnings
// (Collector), route them into their own logging (any Sink), or escalate
// them into hard failures if they choose to. The library never escalates
// on its own.
package diag

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Kind classifies a recorded warning.
type Kind int

const (
	// TypeConversion: a value outside the recognized primitive set, or a
	// coercion that is not meaningful for the wrapped value.
	TypeConversion Kind = iota
	// AccessPattern: index access on a mapping, attribute access on a
	// sequence, or an out-of-bounds index.
	AccessPattern
	// APIUsage: an unknown output selector.
	APIUsage
)

func (k Kind) String() string {
	switch k {
	case TypeConversion:
		return "type-conversion"
	case AccessPattern:
		return "access-pattern"
	case APIUsage:
		return "api-usage"
	default:
		return "unknown"
	}
}

// Event is one recorded warning.
type Event struct {
	Kind  Kind
	Op    string // "new", "get", "index", "call", "coerce"
	Key   string // accessed key, formatted index, or selector
	Depth int
	Msg   string
}

// Sink receives events as they occur.
type Sink interface {
	Record(Event)
}

// Collector is a Sink that retains every event, for use in tests.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *Collector) Record(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of the recorded events in order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]Event, len(c.events))
	copy(res, c.events)
	return res
}

// Count returns the number of recorded events of the given kind.
func (c *Collector) Count(k Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

type logSink struct {
	l *log.Logger
}

// NewLogSink returns a Sink that logs each event at warn level.
func NewLogSink(l *log.Logger) Sink {
	return logSink{l: l}
}

func (s logSink) Record(e Event) {
	s.l.Warn(e.Msg,
		"kind", e.Kind.String(),
		"op", e.Op,
		"key", e.Key,
		"depth", e.Depth,
	)
}

// Default returns the sink used when none is supplied: a warn-level
// logger on stderr.
func Default() Sink {
	return NewLogSink(newLogger(os.Stderr))
}

// Discard returns a Sink that drops every event.
func Discard() Sink {
	return NewLogSink(newLogger(io.Discard))
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
}
