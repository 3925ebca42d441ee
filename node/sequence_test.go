package node

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hydrate-format/go-hydrate/diag"
)

func TestSequenceIndex(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap([]any{map[string]any{"name": "Alice"}, "second"}, 0, testConfig(c))

	if got := n.Index(0).Get("name").Value(); got != "Alice" {
		t.Fatalf("got %v, want Alice", got)
	}
	if got := n.Index(1).Value(); got != "second" {
		t.Fatalf("got %v, want second", got)
	}
	if len(c.Events()) != 0 {
		t.Errorf("unexpected warnings: %+v", c.Events())
	}
}

func TestSequenceOutOfRange(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap([]any{"only"}, 0, testConfig(c))

	for _, i := range []int{99, 1, -1} {
		got := n.Index(i)
		term, ok := got.(*Terminal)
		if !ok || !term.IsNone() {
			t.Fatalf("Index(%d): got %#v, want none-sentinel", i, got)
		}
		if term.Depth() != 1 {
			t.Errorf("Index(%d) depth: got %d, want 1", i, term.Depth())
		}
	}
	if c.Count(diag.AccessPattern) != 3 {
		t.Errorf("AccessPattern warnings: got %d, want 3", c.Count(diag.AccessPattern))
	}
}

func TestSequenceMemoizedIdentity(t *testing.T) {
	n := Wrap([]any{map[string]any{"x": 1}}, 0, testConfig(&diag.Collector{}))

	if n.Index(0) != n.Index(0) {
		t.Error("second access did not return the identical child instance")
	}
}

func TestSequenceGetIsAccessPatternError(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap([]any{1, 2}, 0, testConfig(c))

	got := n.Get("name")
	if term, ok := got.(*Terminal); !ok || !term.IsNone() {
		t.Fatalf("got %#v, want none-sentinel", got)
	}
	if c.Count(diag.AccessPattern) != 1 {
		t.Errorf("AccessPattern warnings: got %d, want 1", c.Count(diag.AccessPattern))
	}
}

func TestSequenceCleanedValue(t *testing.T) {
	n := Wrap([]any{map[string]any{"firstName": "a"}, []any{1}, nil}, 0, testConfig(&diag.Collector{}))

	want := []any{map[string]any{"first_name": "a"}, []any{int64(1)}, nil}
	if diff := cmp.Diff(want, n.Value()); diff != "" {
		t.Errorf("cleaned value (-want +got):\n%s", diff)
	}
}

func TestSequenceNonCanonicalSliceShapes(t *testing.T) {
	n := Wrap([]string{"a", "b"}, 0, testConfig(&diag.Collector{}))
	if n.Kind() != SequenceKind {
		t.Fatalf("kind: got %s", n.Kind())
	}
	if got := n.Index(1).Value(); got != "b" {
		t.Errorf("got %v, want b", got)
	}
}
