package node

import (
	"fmt"

	"github.com/hydrate-format/go-hydrate/diag"
	"github.com/hydrate-format/go-hydrate/encode"
	"github.com/hydrate-format/go-hydrate/format"
)

// Selectors accepted by Resolve. Any other selector records an APIUsage
// warning and yields nil.
const (
	SelectValue   = "value"
	SelectElement = "element"
	SelectType    = "type"
	SelectDepth   = "depth"
	SelectMap     = "map"
)

func resolve(cfg *Config, n Node, selector string) any {
	var out any
	switch selector {
	case "", SelectValue:
		out = n.Value()
	case SelectElement:
		out = map[string]any{n.Type(): n.Value()}
	case SelectType:
		out = n.Type()
	case SelectDepth:
		out = n.Depth()
	case SelectMap:
		if m, ok := n.(*Mapping); ok {
			out = m.KeyTable()
		}
	case "json", "toml", "yaml":
		f, _ := format.ParseFormat(selector)
		s, err := encode.Encode(n.Value(), f)
		if err != nil {
			cfg.warn(diag.Event{
				Kind:  diag.TypeConversion,
				Op:    "call",
				Key:   selector,
				Depth: n.Depth(),
				Msg:   fmt.Sprintf("value cannot be rendered as %s: %v", selector, err),
			})
			break
		}
		out = s
	default:
		cfg.warn(diag.Event{
			Kind:  diag.APIUsage,
			Op:    "call",
			Key:   selector,
			Depth: n.Depth(),
			Msg:   fmt.Sprintf("unknown selector %q", selector),
		})
	}
	cfg.traceCall(n.Kind(), selector, n.Depth(), out)
	return out
}
