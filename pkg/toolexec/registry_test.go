package toolexec

import (
	"context"
	"errors"
	"testing"
)

// noopTool is a minimal Tool for registry tests
type noopTool struct {
	name string
}

func (t *noopTool) Name() string        { return t.name }
func (t *noopTool) Description() string { return "noop" }
func (t *noopTool) Doc() string         { return "# noop" }
func (t *noopTool) Execute(ctx context.Context, input *Input) (*Output, error) {
	return NewOutput("ok"), nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&noopTool{name: "a"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !r.Has("a") {
		t.Error("Expected registry to contain 'a'")
	}
	if r.Count() != 1 {
		t.Errorf("Expected count 1, got %d", r.Count())
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(nil); !errors.Is(err, ErrNilTool) {
		t.Errorf("Expected ErrNilTool, got %v", err)
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&noopTool{name: ""}); err == nil {
		t.Error("Expected error registering tool with empty name")
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&noopTool{name: "a"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	err := r.Register(&noopTool{name: "a"})
	if !errors.Is(err, ErrDuplicateTool) {
		t.Errorf("Expected ErrDuplicateTool, got %v", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	tool := &noopTool{name: "a"}
	if err := r.Register(tool); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, err := r.Get("a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != tool {
		t.Error("Expected Get to return the registered tool")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got %v", err)
	}

	var nfe *ToolNotFoundError
	if !errors.As(err, &nfe) {
		t.Fatal("Expected ToolNotFoundError type")
	}
	if nfe.ToolName != "missing" {
		t.Errorf("Expected tool name 'missing', got '%s'", nfe.ToolName)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(&noopTool{name: name}); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
	}

	infos := r.List()
	if len(infos) != 3 {
		t.Fatalf("Expected 3 tools, got %d", len(infos))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, info.Name, want[i])
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	if !r.Has("calculator") {
		t.Error("Expected default registry to contain 'calculator'")
	}
	if !r.Has("render-template") {
		t.Error("Expected default registry to contain 'render-template'")
	}
	if r.Count() != 2 {
		t.Errorf("Expected 2 built-in tools, got %d", r.Count())
	}
}
