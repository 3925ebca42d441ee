package node

import (
	"fmt"
	"strconv"

	"github.com/hydrate-format/go-hydrate/diag"
)

// Sequence wraps an ordered list. Children are built lazily and memoized
// per index. Indices do not wrap around: negative and out-of-range
// indices degrade to the none-sentinel with a recorded warning.
type Sequence struct {
	base
	view     []any
	children map[int]Node
	cleaned  []any
}

func newSequence(raw any, view []any, depth int, cfg *Config) *Sequence {
	return &Sequence{
		base:     base{cfg: cfg, depth: depth, raw: raw},
		view:     view,
		children: make(map[int]Node, len(view)),
	}
}

func (s *Sequence) Kind() Kind   { return SequenceKind }
func (s *Sequence) Type() string { return "list" }

// Len returns the number of elements in the wrapped structure.
func (s *Sequence) Len() int { return len(s.view) }

func (s *Sequence) Index(i int) Node {
	s.cfg.trace(SequenceKind, "index", strconv.Itoa(i), s.depth+1)
	if i < 0 || i >= len(s.view) {
		s.cfg.warn(diag.Event{
			Kind:  diag.AccessPattern,
			Op:    "index",
			Key:   strconv.Itoa(i),
			Depth: s.depth + 1,
			Msg:   fmt.Sprintf("index %d out of range for sequence of length %d", i, len(s.view)),
		})
		return none(s.depth+1, s.cfg)
	}
	if c, ok := s.children[i]; ok {
		return c
	}
	c := Wrap(s.view[i], s.depth+1, s.cfg)
	s.children[i] = c
	return c
}

// Get on a sequence is an invalid access pattern: it degrades to the
// none-sentinel and records a warning.
func (s *Sequence) Get(name string) Node {
	s.cfg.warn(diag.Event{
		Kind:  diag.AccessPattern,
		Op:    "get",
		Key:   name,
		Depth: s.depth + 1,
		Msg:   fmt.Sprintf("attribute access on sequence (key %q)", name),
	})
	return none(s.depth+1, s.cfg)
}

func (s *Sequence) Value() any {
	if s.cleaned == nil {
		s.cleaned = Clean(s.view).([]any)
	}
	return s.cleaned
}

func (s *Sequence) Resolve(selector string) any {
	return resolve(s.cfg, s, selector)
}

func (s *Sequence) Int() int64 {
	coerceFail(s.cfg, s.Type(), "int", s.depth)
	return 0
}

func (s *Sequence) Float() float64 {
	coerceFail(s.cfg, s.Type(), "float", s.depth)
	return 0
}

func (s *Sequence) Bool() bool {
	coerceFail(s.cfg, s.Type(), "bool", s.depth)
	return false
}
