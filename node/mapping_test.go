package node

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/hydrate-format/go-hydrate/diag"
)

func testConfig(c *diag.Collector) *Config {
	return NewConfig(false, c, log.New(io.Discard))
}

func TestMappingGet(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"user-info": map[string]any{"firstName": "John"}}, 0, testConfig(c))

	got := n.Get("user_info").Get("first_name").Value()
	if got != "John" {
		t.Fatalf("got %v, want John", got)
	}
	if len(c.Events()) != 0 {
		t.Errorf("unexpected warnings: %+v", c.Events())
	}
}

func TestMappingMiss(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"a": 1}, 0, testConfig(c))

	missing := n.Get("nope")
	term, ok := missing.(*Terminal)
	if !ok {
		t.Fatalf("miss returned %T, want *Terminal", missing)
	}
	if !term.IsNone() {
		t.Error("miss is not the none-sentinel")
	}
	if term.Depth() != 1 {
		t.Errorf("miss depth: got %d, want 1", term.Depth())
	}
	if term.Type() != "NoneType" {
		t.Errorf("miss type: got %q", term.Type())
	}
	// a plain miss is not a warning
	if len(c.Events()) != 0 {
		t.Errorf("unexpected warnings: %+v", c.Events())
	}
}

func TestMappingMemoizedIdentity(t *testing.T) {
	n := Wrap(map[string]any{"child": map[string]any{"x": 1}}, 0, testConfig(&diag.Collector{}))

	first := n.Get("child")
	second := n.Get("child")
	if first != second {
		t.Error("second access did not return the identical child instance")
	}
}

func TestMappingIndexIsAccessPatternError(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"a": 1}, 0, testConfig(c))

	got := n.Index(0)
	if term, ok := got.(*Terminal); !ok || !term.IsNone() {
		t.Fatalf("got %#v, want none-sentinel", got)
	}
	if c.Count(diag.AccessPattern) != 1 {
		t.Errorf("AccessPattern warnings: got %d, want 1", c.Count(diag.AccessPattern))
	}
}

func TestMappingKeyCollision(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"userName": 1, "user_name": 2}, 0, testConfig(c))

	m := n.(*Mapping)
	// sorted originals: "userName" < "user_name"; last write wins
	if orig := m.KeyTable()["user_name"]; orig != "user_name" {
		t.Errorf("collision winner: got %q, want user_name", orig)
	}
	if got := n.Get("user_name").Value(); got != int64(2) {
		t.Errorf("collision value: got %v, want 2", got)
	}
}

func TestMappingCleanedValue(t *testing.T) {
	n := Wrap(map[string]any{
		"user-info": map[string]any{"firstName": "John", "Last Name": "Doe"},
		"tags":      []any{"a", 2},
	}, 0, testConfig(&diag.Collector{}))

	want := map[string]any{
		"user_info": map[string]any{"first_name": "John", "last_name": "Doe"},
		"tags":      []any{"a", int64(2)},
	}
	if diff := cmp.Diff(want, n.Value()); diff != "" {
		t.Errorf("cleaned value (-want +got):\n%s", diff)
	}
}

func TestMappingDepthMonotonicity(t *testing.T) {
	n := Wrap(map[string]any{"a": map[string]any{"b": []any{map[string]any{"c": 1}}}}, 0, testConfig(&diag.Collector{}))

	path := []Node{n}
	path = append(path, path[0].Get("a"))
	path = append(path, path[1].Get("b"))
	path = append(path, path[2].Index(0))
	path = append(path, path[3].Get("c"))
	path = append(path, path[4].Get("missing")) // degraded descent counts too
	for i, p := range path {
		if p.Depth() != i {
			t.Errorf("depth at step %d: got %d", i, p.Depth())
		}
	}
}

func TestMappingCoercionFails(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"a": 1}, 0, testConfig(c))

	if got := n.Int(); got != 0 {
		t.Errorf("Int fallback: got %d", got)
	}
	if got := n.Float(); got != 0 {
		t.Errorf("Float fallback: got %v", got)
	}
	if got := n.Bool(); got {
		t.Errorf("Bool fallback: got %v", got)
	}
	if c.Count(diag.TypeConversion) != 3 {
		t.Errorf("TypeConversion warnings: got %d, want 3", c.Count(diag.TypeConversion))
	}
}

func TestMappingNonCanonicalMapShapes(t *testing.T) {
	// native callers may hold concretely typed maps
	n := Wrap(map[string]string{"firstName": "Ada"}, 0, testConfig(&diag.Collector{}))
	if got := n.Get("first_name").Value(); got != "Ada" {
		t.Errorf("got %v, want Ada", got)
	}
	n = Wrap(map[int]any{1: "one"}, 0, testConfig(&diag.Collector{}))
	if got := n.Get("1").Value(); got != "one" {
		t.Errorf("int-keyed map: got %v, want one", got)
	}
}
