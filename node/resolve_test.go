package node

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hydrate-format/go-hydrate/diag"
)

func TestResolveSelectors(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"userName": "Ada", "Age": 36}, 0, testConfig(c))

	wantValue := map[string]any{"user_name": "Ada", "age": int64(36)}
	if diff := cmp.Diff(wantValue, n.Resolve("")); diff != "" {
		t.Errorf("default selector (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantValue, n.Resolve(SelectValue)); diff != "" {
		t.Errorf("value selector (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"dict": wantValue}, n.Resolve(SelectElement)); diff != "" {
		t.Errorf("element selector (-want +got):\n%s", diff)
	}
	if got := n.Resolve(SelectType); got != "dict" {
		t.Errorf("type selector: got %v", got)
	}
	if got := n.Resolve(SelectDepth); got != 0 {
		t.Errorf("depth selector: got %v", got)
	}
	wantMap := map[string]string{"user_name": "userName", "age": "Age"}
	if diff := cmp.Diff(wantMap, n.Resolve(SelectMap)); diff != "" {
		t.Errorf("map selector (-want +got):\n%s", diff)
	}
	if len(c.Events()) != 0 {
		t.Errorf("unexpected warnings: %+v", c.Events())
	}
}

func TestResolveMapOnNonMapping(t *testing.T) {
	n := Wrap([]any{1}, 0, testConfig(&diag.Collector{}))
	if got := n.Resolve(SelectMap); got != nil {
		t.Errorf("map on sequence: got %v, want nil", got)
	}
	n = Wrap("x", 0, testConfig(&diag.Collector{}))
	if got := n.Resolve(SelectMap); got != nil {
		t.Errorf("map on terminal: got %v, want nil", got)
	}
}

func TestResolveFormats(t *testing.T) {
	n := Wrap(map[string]any{"a": 1, "b": nil}, 0, testConfig(&diag.Collector{}))

	js, ok := n.Resolve("json").(string)
	if !ok || !strings.Contains(js, `"a": 1`) || !strings.Contains(js, "null") {
		t.Errorf("json: %v", n.Resolve("json"))
	}
	ym, ok := n.Resolve("yaml").(string)
	if !ok || !strings.Contains(ym, "a: 1") {
		t.Errorf("yaml: %v", n.Resolve("yaml"))
	}
	// TOML cannot represent null: b is omitted
	tm, ok := n.Resolve("toml").(string)
	if !ok || !strings.Contains(tm, "a = 1") || strings.Contains(tm, "b") {
		t.Errorf("toml: %v", n.Resolve("toml"))
	}
}

func TestResolveUnknownSelector(t *testing.T) {
	c := &diag.Collector{}
	n := Wrap(map[string]any{"a": 1}, 0, testConfig(c))

	if got := n.Resolve("xml"); got != nil {
		t.Errorf("unknown selector: got %v, want nil", got)
	}
	if c.Count(diag.APIUsage) != 1 {
		t.Errorf("APIUsage warnings: got %d, want 1", c.Count(diag.APIUsage))
	}
}

func TestResolveTerminal(t *testing.T) {
	n := Wrap("John", 2, testConfig(&diag.Collector{}))

	if got := n.Resolve(""); got != "John" {
		t.Errorf("value: got %v", got)
	}
	if diff := cmp.Diff(map[string]any{"str": any("John")}, n.Resolve(SelectElement)); diff != "" {
		t.Errorf("element (-want +got):\n%s", diff)
	}
	if got := n.Resolve(SelectDepth); got != 2 {
		t.Errorf("depth: got %v", got)
	}
	if got := n.Resolve("json"); got != `"John"` {
		t.Errorf("json: got %v", got)
	}
}

func TestResolveNoneSentinel(t *testing.T) {
	n := Wrap(map[string]any{"a": 1}, 0, testConfig(&diag.Collector{})).Get("missing")

	if got := n.Resolve(""); got != nil {
		t.Errorf("value: got %v, want nil", got)
	}
	if got := n.Resolve(SelectType); got != "NoneType" {
		t.Errorf("type: got %v", got)
	}
	if diff := cmp.Diff(map[string]any{"NoneType": any(nil)}, n.Resolve(SelectElement)); diff != "" {
		t.Errorf("element (-want +got):\n%s", diff)
	}
}
