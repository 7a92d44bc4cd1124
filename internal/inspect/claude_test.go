package inspect

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/testutil"
)

func claudeInspector(t *testing.T, contents string) *ClaudeInspector {
	t.Helper()
	path := testutil.WriteConfig(t, "claude_desktop_config.json", contents)
	return NewClaudeInspector(testRegistry(t), WithConfigPath(model.ClientClaude, path))
}

func TestClaudeInspect_RecognizedAndUnrecognized(t *testing.T) {
	ins := claudeInspector(t, `{"mcpServers": {"fs": {"command": "npx"}, "ghost": {"command": "ghost-bin"}}}`)

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.InstalledEntry{
		{Client: model.ClientClaude, ServerID: "fs", Recognized: true},
		{Client: model.ClientClaude, ServerID: "ghost", Recognized: false},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries: got %+v, want %+v", entries, want)
	}
}

func TestClaudeInspect_RecognizedListedFirst(t *testing.T) {
	// ghost appears before fs in the file; recognized entries still lead
	ins := claudeInspector(t, `{"mcpServers": {"ghost": {}, "fs": {}, "phantom": {}}}`)

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.ServerID
	}
	want := []string{"fs", "ghost", "phantom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}
	if !entries[0].Recognized || entries[1].Recognized || entries[2].Recognized {
		t.Errorf("recognized flags wrong: %+v", entries)
	}
}

func TestClaudeInspect_PreservesFileOrderWithinGroups(t *testing.T) {
	// Both fs and web are in the catalog; their relative file order holds
	ins := claudeInspector(t, `{"mcpServers": {"web": {}, "fs": {}}}`)

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].ServerID != "web" || entries[1].ServerID != "fs" {
		t.Errorf("expected file order web, fs; got %+v", entries)
	}
}

func TestClaudeInspect_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claude_desktop_config.json")
	ins := NewClaudeInspector(testRegistry(t), WithConfigPath(model.ClientClaude, path))

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("missing file must not be an error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestClaudeInspect_CorruptJSON(t *testing.T) {
	ins := claudeInspector(t, `{"mcpServers": {`)

	_, err := ins.Inspect()
	if err == nil {
		t.Fatal("expected error for corrupt config")
	}
	if !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("expected ErrConfigUnavailable, got: %v", err)
	}
}

func TestClaudeInspect_MissingServersField(t *testing.T) {
	ins := claudeInspector(t, `{"theme": "dark"}`)

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestClaudeInspect_NullServersField(t *testing.T) {
	ins := claudeInspector(t, `{"mcpServers": null}`)

	entries, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestClaudeInspect_ServersFieldNotObject(t *testing.T) {
	ins := claudeInspector(t, `{"mcpServers": ["fs"]}`)

	_, err := ins.Inspect()
	if !errors.Is(err, ErrConfigUnavailable) {
		t.Errorf("expected ErrConfigUnavailable, got: %v", err)
	}
}

func TestClaudeInspect_Idempotent(t *testing.T) {
	ins := claudeInspector(t, `{"mcpServers": {"fs": {}, "ghost": {}, "web": {}}}`)

	first, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ins.Inspect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat inspection differs: %+v vs %+v", first, second)
	}
}
