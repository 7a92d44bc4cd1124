package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/registry"
)

// ClaudeInspector reads Claude Desktop's claude_desktop_config.json. The
// keys of its mcpServers object double as server identities, so entries are
// reconciled by exact catalog ID lookup. Keys with no catalog match are kept
// and flagged unrecognized so manual installs stay visible.
type ClaudeInspector struct {
	reg        *registry.Registry
	configPath string
}

// NewClaudeInspector creates an inspector for Claude Desktop.
func NewClaudeInspector(reg *registry.Registry, opts ...Option) *ClaudeInspector {
	o := applyOptions(opts)
	path := o.configPaths[model.ClientClaude]
	if path == "" {
		path = claudeConfigPath()
	}
	return &ClaudeInspector{reg: reg, configPath: path}
}

// Kind returns the client kind this inspector covers.
func (c *ClaudeInspector) Kind() model.ClientKind {
	return model.ClientClaude
}

// Inspect reads the config and reconciles every mcpServers key against the
// catalog. Recognized entries are listed before unrecognized ones, each
// group in file order.
func (c *ClaudeInspector) Inspect() ([]model.InstalledEntry, error) {
	data, err := readConfig(c.configPath)
	if err != nil || data == nil {
		return nil, err
	}

	keys, err := mcpServerKeys(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, c.configPath, err)
	}

	var recognized, unrecognized []model.InstalledEntry
	for _, key := range keys {
		entry := model.InstalledEntry{Client: model.ClientClaude, ServerID: key}
		if _, ok := c.reg.Get(key); ok {
			entry.Recognized = true
			recognized = append(recognized, entry)
		} else {
			unrecognized = append(unrecognized, entry)
		}
	}
	return append(recognized, unrecognized...), nil
}

// mcpServerKeys extracts the mcpServers object keys in file order.
// Decoding into a map would lose the order, so the object is walked
// token by token instead.
func mcpServerKeys(data []byte) ([]string, error) {
	var cfg struct {
		MCPServers json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.MCPServers) == 0 || bytes.Equal(cfg.MCPServers, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(cfg.MCPServers))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("mcpServers is not an object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in mcpServers", tok)
		}
		keys = append(keys, key)

		// Consume the value without caring about its shape.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// claudeConfigPath returns the platform-specific location of
// claude_desktop_config.json.
func claudeConfigPath() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			appdata = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appdata, "Claude", "claude_desktop_config.json")
	default:
		return filepath.Join(home, ".config", "claude", "claude_desktop_config.json")
	}
}
