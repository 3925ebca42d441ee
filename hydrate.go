// Package hydrate provides attribute-style traversal of heterogeneous
// nested data with normalized keys, tracked depth, and a safe-by-default
// error model: missing paths never fail, they resolve to a typed absent
// value.
//
// # Usage
//
//	root := hydrate.New(`{"user-info": {"firstName": "John"}}`)
//	root.Get("user_info").Get("first_name").Resolve("") // "John"
//	root.Get("user_info").Get("missing").Resolve("")    // nil, no panic
//
// Input may be a native map or slice, text in JSON, TOML, or YAML
// (detected in that order), or a scalar. Text that decodes in no format
// is wrapped as an opaque string rather than reported as an error.
//
// # Related Packages
//
//   - github.com/hydrate-format/go-hydrate/node - The traversal engine
//   - github.com/hydrate-format/go-hydrate/parse - Text sniffing/decoding
//   - github.com/hydrate-format/go-hydrate/encode - Value rendering
//   - github.com/hydrate-format/go-hydrate/diag - Recorded warnings
package hydrate

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hydrate-format/go-hydrate/diag"
	"github.com/hydrate-format/go-hydrate/encode"
	"github.com/hydrate-format/go-hydrate/format"
	"github.com/hydrate-format/go-hydrate/node"
	"github.com/hydrate-format/go-hydrate/parse"
)

// Shape is the detected top-level shape of the source.
type Shape int

const (
	NoneShape Shape = iota
	MappingShape
	SequenceShape
	TerminalShape
)

func (s Shape) String() string {
	switch s {
	case NoneShape:
		return "none"
	case MappingShape:
		return "mapping"
	case SequenceShape:
		return "sequence"
	case TerminalShape:
		return "terminal"
	default:
		return "<unknown shape>"
	}
}

type options struct {
	debug  bool
	sink   diag.Sink
	logger *log.Logger
}

type Option func(*options)

// WithDebug enables the structured trace: one record per traversal step
// and terminal call. The flag is fixed at construction and inherited by
// the whole tree.
func WithDebug(v bool) Option {
	return func(o *options) { o.debug = v }
}

// WithSink routes recorded warnings to a caller-owned sink instead of the
// default warn-level logger.
func WithSink(s diag.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Root is the user-facing construction point. It owns the top-level node
// and is immutable after New.
type Root struct {
	shape Shape
	node  node.Node
	cfg   *node.Config
}

// New detects the shape of source and builds the tree over it.
//
// Strings are sniffed as JSON, then TOML, then YAML; a string that
// decodes in none of them stays an opaque string terminal. Maps and
// slices of any element type wrap directly. Everything else wraps as a
// terminal (degrading to the absent value, with a recorded warning, when
// the type is unrecognized).
func New(source any, opts ...Option) *Root {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	cfg := node.NewConfig(o.debug, o.sink, o.logger)

	if text, ok := source.(string); ok {
		v, f, err := parse.Text(text)
		if err == nil {
			if cfg.Debug {
				cfg.Logger.Debug("parsed", "format", f.String())
			}
			source = v
		}
	}

	n := node.Wrap(source, 0, cfg)
	shape := TerminalShape
	switch x := n.(type) {
	case *node.Mapping:
		shape = MappingShape
	case *node.Sequence:
		shape = SequenceShape
	case *node.Terminal:
		if x.IsNone() {
			shape = NoneShape
		}
	}
	return &Root{shape: shape, node: n, cfg: cfg}
}

// Shape reports the detected top-level shape.
func (r *Root) Shape() Shape { return r.shape }

// Node returns the top-level node.
func (r *Root) Node() node.Node { return r.node }

func (r *Root) Get(name string) node.Node   { return r.node.Get(name) }
func (r *Root) Index(i int) node.Node       { return r.node.Index(i) }
func (r *Root) Resolve(selector string) any { return r.node.Resolve(selector) }
func (r *Root) Value() any                  { return r.node.Value() }
func (r *Root) Type() string                { return r.node.Type() }
func (r *Root) Int() int64                  { return r.node.Int() }
func (r *Root) Float() float64              { return r.node.Float() }
func (r *Root) Bool() bool                  { return r.node.Bool() }

// String renders the cleaned value as YAML.
func (r *Root) String() string {
	s, err := encode.Encode(r.node.Value(), format.YAMLFormat)
	if err != nil {
		return fmt.Sprintf("%v", r.node.Value())
	}
	return s
}
