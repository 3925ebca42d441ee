package node

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/hydrate-format/go-hydrate/diag"
	"github.com/hydrate-format/go-hydrate/keys"
)

// Mapping wraps a key-value structure. The normalized-key table is built
// eagerly in one pass at construction; children are built lazily and
// memoized per normalized key.
type Mapping struct {
	base
	view     map[string]any    // raw, coerced to canonical map shape
	keyTable map[string]string // normalized key -> original key
	children map[string]Node
	cleaned  map[string]any
}

func newMapping(raw any, view map[string]any, depth int, cfg *Config) *Mapping {
	kt := make(map[string]string, len(view))
	// sorted pass makes the last-write-wins collision rule deterministic
	for _, k := range slices.Sorted(maps.Keys(view)) {
		kt[keys.Normalize(k)] = k
	}
	return &Mapping{
		base:     base{cfg: cfg, depth: depth, raw: raw},
		view:     view,
		keyTable: kt,
		children: make(map[string]Node, len(view)),
	}
}

func (m *Mapping) Kind() Kind   { return MappingKind }
func (m *Mapping) Type() string { return "dict" }

// Len returns the number of entries in the wrapped structure.
func (m *Mapping) Len() int { return len(m.view) }

// KeyTable returns a copy of the normalized-key to original-key table.
func (m *Mapping) KeyTable() map[string]string {
	return maps.Clone(m.keyTable)
}

// Get looks up an already-normalized attribute name. A hit builds (or
// returns the memoized) child one level deeper; a miss degrades to the
// none-sentinel, leaving only a trace entry when debug is enabled.
func (m *Mapping) Get(name string) Node {
	m.cfg.trace(MappingKind, "get", name, m.depth+1)
	if c, ok := m.children[name]; ok {
		return c
	}
	orig, ok := m.keyTable[name]
	if !ok {
		m.cfg.trace(MappingKind, "miss", name, m.depth+1)
		return none(m.depth+1, m.cfg)
	}
	c := Wrap(m.view[orig], m.depth+1, m.cfg)
	m.children[name] = c
	return c
}

// Index on a mapping is an invalid access pattern: it degrades to the
// none-sentinel and records a warning.
func (m *Mapping) Index(i int) Node {
	m.cfg.warn(diag.Event{
		Kind:  diag.AccessPattern,
		Op:    "index",
		Key:   strconv.Itoa(i),
		Depth: m.depth + 1,
		Msg:   fmt.Sprintf("index access on mapping (index %d)", i),
	})
	return none(m.depth+1, m.cfg)
}

func (m *Mapping) Value() any {
	if m.cleaned == nil {
		m.cleaned = Clean(m.view).(map[string]any)
	}
	return m.cleaned
}

func (m *Mapping) Resolve(selector string) any {
	return resolve(m.cfg, m, selector)
}

func (m *Mapping) Int() int64 {
	coerceFail(m.cfg, m.Type(), "int", m.depth)
	return 0
}

func (m *Mapping) Float() float64 {
	coerceFail(m.cfg, m.Type(), "float", m.depth)
	return 0
}

func (m *Mapping) Bool() bool {
	coerceFail(m.cfg, m.Type(), "bool", m.depth)
	return false
}
