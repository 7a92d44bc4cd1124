// Package registry provides the canonical catalog of known MCP servers.
// The catalog is loaded once at startup and never mutated; inspectors
// receive it by reference and only read from it.
package registry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlatman/mcpls/internal/model"
)

//go:embed registry.yaml
var embedded []byte

// Registry is an immutable catalog of known server definitions,
// addressable by ID and by launch shape.
type Registry struct {
	servers []model.RegistryServer
	byID    map[string]*model.RegistryServer
}

// Load parses the embedded catalog.
func Load() (*Registry, error) {
	return parse(embedded)
}

// LoadFile parses a catalog from an alternate file path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}
	reg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}
	return reg, nil
}

type catalogFile struct {
	Servers []model.RegistryServer `yaml:"servers"`
}

func parse(data []byte) (*Registry, error) {
	var cat catalogFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	r := &Registry{
		servers: cat.Servers,
		byID:    make(map[string]*model.RegistryServer, len(cat.Servers)),
	}
	for i := range r.servers {
		s := &r.servers[i]
		if s.ID == "" {
			return nil, fmt.Errorf("registry entry %d has no id", i)
		}
		if s.Command == "" {
			return nil, fmt.Errorf("registry entry %q has no command", s.ID)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate registry id %q", s.ID)
		}
		r.byID[s.ID] = s
	}
	return r, nil
}

// Get looks up a server by its catalog ID.
func (r *Registry) Get(id string) (*model.RegistryServer, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// MatchCommand finds the first server in catalog order whose command equals
// the given command and whose argument template is a prefix of the given
// args. Extra args beyond the template are tolerated; clients append
// runtime flags the catalog doesn't know about.
func (r *Registry) MatchCommand(command string, args []string) (*model.RegistryServer, bool) {
	for i := range r.servers {
		s := &r.servers[i]
		if s.Command != command {
			continue
		}
		if argsHavePrefix(args, s.Args) {
			return s, true
		}
	}
	return nil, false
}

func argsHavePrefix(args, template []string) bool {
	if len(args) < len(template) {
		return false
	}
	for i := range template {
		if args[i] != template[i] {
			return false
		}
	}
	return true
}

// Servers returns a copy of the catalog in file order.
func (r *Registry) Servers() []model.RegistryServer {
	out := make([]model.RegistryServer, len(r.servers))
	copy(out, r.servers)
	return out
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.servers)
}
