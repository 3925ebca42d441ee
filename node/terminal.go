package node

import (
	"fmt"
	"strconv"

	"github.com/hydrate-format/go-hydrate/diag"
)

// Terminal wraps a scalar or the absent value. It ends the traversal
// graph: any further descent yields another Terminal wrapping absence.
type Terminal struct {
	base
	value any
}

func newTerminal(v any, depth int, cfg *Config) *Terminal {
	p, ok := primitive(v)
	if !ok {
		cfg.warn(diag.Event{
			Kind:  diag.TypeConversion,
			Op:    "new",
			Key:   fmt.Sprintf("%T", v),
			Depth: depth,
			Msg:   fmt.Sprintf("unsupported value type %T, absent value substituted", v),
		})
	}
	return &Terminal{base: base{cfg: cfg, depth: depth, raw: v}, value: p}
}

// none returns a fresh none-sentinel Terminal. No warning is recorded;
// the callers that need one record it themselves.
func none(depth int, cfg *Config) *Terminal {
	return &Terminal{base: base{cfg: cfg, depth: depth}}
}

func (t *Terminal) Kind() Kind { return TerminalKind }

// IsNone reports whether t wraps the absent value.
func (t *Terminal) IsNone() bool { return t.value == nil }

func (t *Terminal) Value() any   { return t.value }
func (t *Terminal) Type() string { return typeTag(t.value) }

func (t *Terminal) Get(name string) Node {
	t.cfg.trace(TerminalKind, "get", name, t.depth+1)
	return none(t.depth+1, t.cfg)
}

func (t *Terminal) Index(i int) Node {
	t.cfg.trace(TerminalKind, "index", strconv.Itoa(i), t.depth+1)
	return none(t.depth+1, t.cfg)
}

func (t *Terminal) Resolve(selector string) any {
	return resolve(t.cfg, t, selector)
}

func (t *Terminal) Int() int64 {
	switch x := t.value.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		if i, err := strconv.ParseInt(x, 10, 64); err == nil {
			return i
		}
	}
	coerceFail(t.cfg, t.Type(), "int", t.depth)
	return 0
}

func (t *Terminal) Float() float64 {
	switch x := t.value.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f
		}
	}
	coerceFail(t.cfg, t.Type(), "float", t.depth)
	return 0
}

func (t *Terminal) Bool() bool {
	switch x := t.value.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b
		}
	}
	coerceFail(t.cfg, t.Type(), "bool", t.depth)
	return false
}

func coerceFail(cfg *Config, tag, target string, depth int) {
	cfg.warn(diag.Event{
		Kind:  diag.TypeConversion,
		Op:    "coerce",
		Key:   target,
		Depth: depth,
		Msg:   fmt.Sprintf("cannot convert %s to %s", tag, target),
	})
}
