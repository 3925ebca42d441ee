// Package encode renders cleaned values back to JSON, TOML, or YAML text.
//
// Values are expected in the plain Go shapes the node layer produces:
// map[string]any, []any, string, int64, float64, bool, and nil.
//
// TOML has two constraints the other formats do not, both inherited from
// the format itself: it cannot represent null, so nil-valued entries are
// stripped before rendering, and it has no bare-array (or bare-scalar)
// document form, so non-table top-level values are wrapped in a
// single-key root table.
package encode

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/hydrate-format/go-hydrate/format"
)

// ItemsKey is the root table key under which a top-level sequence is
// wrapped when rendering TOML.
const ItemsKey = "items"

// ValueKey is the root table key under which a top-level scalar is
// wrapped when rendering TOML.
const ValueKey = "value"

type EncState struct {
	indent int
}

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Encode renders v in the given format. JSON and TOML emit map keys in
// sorted order, so their output is deterministic for map-shaped values.
func Encode(v any, f format.Format, opts ...EncodeOption) (string, error) {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch f {
	case format.JSONFormat:
		return oj.JSON(v, &ojg.Options{Indent: es.indent, Sort: true}), nil
	case format.YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(d), "\n"), nil
	case format.TOMLFormat:
		return encodeTOML(v, es)
	default:
		return "", format.ErrBadFormat
	}
}

// MustString renders v in the given format and panics on failure.
func MustString(v any, f format.Format, opts ...EncodeOption) string {
	s, err := Encode(v, f, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeTOML(v any, es *EncState) (string, error) {
	v = StripNulls(v)
	doc, ok := v.(map[string]any)
	if !ok {
		switch x := v.(type) {
		case []any:
			doc = map[string]any{ItemsKey: x}
		case nil:
			doc = map[string]any{}
		default:
			doc = map[string]any{ValueKey: x}
		}
	}
	buf := bytes.NewBuffer(nil)
	enc := toml.NewEncoder(buf)
	enc.Indent = strings.Repeat(" ", es.indent)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// StripNulls returns v with nil-valued map entries and nil sequence
// elements removed recursively. The input is not modified.
func StripNulls(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			if e == nil {
				continue
			}
			res[k] = StripNulls(e)
		}
		return res
	case []any:
		res := make([]any, 0, len(x))
		for _, e := range x {
			if e == nil {
				continue
			}
			res = append(res, StripNulls(e))
		}
		return res
	default:
		return v
	}
}
