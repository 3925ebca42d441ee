package node

import (
	"maps"
	"math"
	"slices"

	"github.com/hydrate-format/go-hydrate/keys"
)

// primitive normalizes a scalar to the recognized set: string, int64,
// float64, bool, or nil. The second result reports whether v belonged to
// the set; when it did not, the first result is nil.
func primitive(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case string:
		return x, true
	case bool:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return uintVal(uint64(x)), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return uintVal(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case []byte:
		return string(x), true
	}
	return nil, false
}

func uintVal(x uint64) any {
	if x > math.MaxInt64 {
		return float64(x)
	}
	return int64(x)
}

// Clean returns the cleaned form of a raw value: every key recursively
// normalized, every scalar normalized to the recognized primitive set,
// unrecognized scalars replaced by nil. Colliding normalized keys resolve
// last-write-wins over the original keys in sorted order.
func Clean(v any) any {
	if m, ok := asMap(v); ok {
		res := make(map[string]any, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			res[keys.Normalize(k)] = Clean(m[k])
		}
		return res
	}
	if s, ok := asSlice(v); ok {
		res := make([]any, len(s))
		for i := range s {
			res[i] = Clean(s[i])
		}
		return res
	}
	p, _ := primitive(v)
	return p
}

// typeTag names a cleaned value's type. The spellings are part of the
// output contract of the "type" and "element" selectors.
func typeTag(cleaned any) string {
	switch cleaned.(type) {
	case map[string]any:
		return "dict"
	case []any:
		return "list"
	case string:
		return "str"
	case int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	default:
		return "NoneType"
	}
}
