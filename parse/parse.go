// Package parse decodes text in any of the supported formats into plain Go
// values (map[string]any, []any, and scalars).
//
// Sniffing tries JSON first, then TOML, then YAML. A text that decodes in
// none of them is an ordinary expected outcome, reported as ErrNoFormat,
// not an exceptional condition: the caller treats such text as an opaque
// string.
package parse

import (
	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/ohler55/ojg/oj"

	"github.com/hydrate-format/go-hydrate/format"
)

// Text sniffs and decodes, returning the decoded value and the format that
// accepted it.
func Text(text string) (any, format.Format, error) {
	for _, f := range format.AllFormats() {
		v, err := In([]byte(text), f)
		if err == nil {
			return v, f, nil
		}
	}
	return nil, 0, ErrNoFormat
}

// In decodes data in a single known format.
func In(data []byte, f format.Format) (any, error) {
	switch f {
	case format.JSONFormat:
		return oj.Parse(data)
	case format.TOMLFormat:
		// a TOML document is always a table at the top level
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case format.YAMLFormat:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, format.ErrBadFormat
	}
}
