package node

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/hydrate-format/go-hydrate/diag"
)

// Kind identifies the variant of a node.
type Kind int

const (
	TerminalKind Kind = iota
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	default:
		return "<unknown kind>"
	}
}

// Node is the capability set shared by all three variants. Traversal
// methods never fail; see the package documentation for the degradation
// rules.
type Node interface {
	Kind() Kind
	Depth() int

	// Raw returns the original wrapped value, untouched.
	Raw() any
	// Value returns the cleaned value: keys recursively normalized,
	// scalars normalized to string/int64/float64/bool/nil.
	Value() any
	// Type returns the value's type tag: "dict", "list", "str", "int",
	// "float", "bool", or "NoneType".
	Type() string

	Get(name string) Node
	Index(i int) Node
	Resolve(selector string) any

	Int() int64
	Float() float64
	Bool() bool
}

// Config is the per-tree state shared by every node: the debug flag, the
// diagnostics sink, and the trace logger. It is set once when the tree is
// built and inherited by reference on every descent.
type Config struct {
	Debug  bool
	Sink   diag.Sink
	Logger *log.Logger
}

func NewConfig(debug bool, sink diag.Sink, logger *log.Logger) *Config {
	if sink == nil {
		sink = diag.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Config{Debug: debug, Sink: sink, Logger: logger}
}

func (c *Config) warn(e diag.Event) {
	c.Sink.Record(e)
}

func (c *Config) trace(k Kind, op, key string, depth int) {
	if !c.Debug {
		return
	}
	c.Logger.Debug("traverse",
		"kind", k.String(), "op", op, "key", key, "depth", depth)
}

func (c *Config) traceCall(k Kind, selector string, depth int, out any) {
	if !c.Debug {
		return
	}
	c.Logger.Debug("resolve",
		"kind", k.String(), "op", "call", "selector", selector,
		"depth", depth, "output", out)
}

type base struct {
	cfg   *Config
	depth int
	raw   any
}

func (b *base) Depth() int { return b.depth }
func (b *base) Raw() any   { return b.raw }

// Wrap builds the node for a raw value at the given depth. Key-value
// shapes become Mappings, list shapes become Sequences, and everything
// else becomes a Terminal.
func Wrap(v any, depth int, cfg *Config) Node {
	if m, ok := asMap(v); ok {
		return newMapping(v, m, depth, cfg)
	}
	if s, ok := asSlice(v); ok {
		return newSequence(v, s, depth, cfg)
	}
	return newTerminal(v, depth, cfg)
}

// asMap coerces any map-kinded value to map[string]any. Non-string keys
// are formatted with fmt.Sprint.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	res := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		res[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return res, true
}

// asSlice coerces any slice- or array-kinded value to []any. Byte slices
// are excluded: they read as strings, not sequences.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}
