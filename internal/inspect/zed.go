package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/registry"
)

// ZedInspector reads Zed's settings.json. Zed stores no identity key for a
// server, only its launch transport, so entries are matched structurally:
// the catalog template's command must equal the entry's command and its args
// must be a prefix of the entry's args.
type ZedInspector struct {
	reg        *registry.Registry
	configPath string
}

// NewZedInspector creates an inspector for Zed.
func NewZedInspector(reg *registry.Registry, opts ...Option) *ZedInspector {
	o := applyOptions(opts)
	path := o.configPaths[model.ClientZed]
	if path == "" {
		path = zedConfigPath()
	}
	return &ZedInspector{reg: reg, configPath: path}
}

// Kind returns the client kind this inspector covers.
func (z *ZedInspector) Kind() model.ClientKind {
	return model.ClientZed
}

type zedSettings struct {
	Experimental struct {
		Servers []zedServer `json:"modelContextProtocolServers"`
	} `json:"experimental"`
}

type zedServer struct {
	Transport struct {
		Command string   `json:"command"`
		Args    []string `json:"args"`
	} `json:"transport"`
}

// Inspect reads the settings and matches each experimental server entry
// against the catalog. Entries with no structural match are dropped rather
// than flagged: without an identity key there is no stable name to report.
func (z *ZedInspector) Inspect() ([]model.InstalledEntry, error) {
	data, err := readConfig(z.configPath)
	if err != nil || data == nil {
		return nil, err
	}

	var cfg zedSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, z.configPath, err)
	}

	var entries []model.InstalledEntry
	for _, srv := range cfg.Experimental.Servers {
		s, ok := z.reg.MatchCommand(srv.Transport.Command, srv.Transport.Args)
		if !ok {
			continue
		}
		entries = append(entries, model.InstalledEntry{
			Client:     model.ClientZed,
			ServerID:   s.ID,
			Recognized: true,
		})
	}
	return entries, nil
}

// zedConfigPath returns the location of Zed's settings.json. Zed uses
// ~/.config/zed on both macOS and Linux.
func zedConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zed", "settings.json")
}
