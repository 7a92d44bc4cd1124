// Package inspect reads MCP server entries out of local AI-client
// configuration files and reconciles them against the known-server catalog.
//
// Each supported client stores its servers in a different shape. Claude
// Desktop keys entries by name, so reconciliation is a catalog ID lookup.
// Zed stores only a launch command and argument list, so entries are matched
// structurally against catalog launch templates.
package inspect

import (
	"errors"
	"fmt"
	"os"

	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/registry"
)

// ErrConfigUnavailable indicates a client config file exists but could not
// be read or parsed. A missing file is not an error: the client simply
// isn't installed.
var ErrConfigUnavailable = errors.New("client config unavailable")

// Inspector reads one client's config and reports its installed servers.
type Inspector interface {
	Kind() model.ClientKind
	Inspect() ([]model.InstalledEntry, error)
}

// Option configures inspector construction.
type Option func(*options)

type options struct {
	configPaths map[model.ClientKind]string
}

func applyOptions(opts []Option) options {
	o := options{configPaths: make(map[model.ClientKind]string)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithConfigPath overrides the default config file location for a client.
// Used in tests to point inspectors at fixture files.
func WithConfigPath(kind model.ClientKind, path string) Option {
	return func(o *options) {
		o.configPaths[kind] = path
	}
}

// For returns the inspector for the given client kind.
func For(kind model.ClientKind, reg *registry.Registry, opts ...Option) (Inspector, error) {
	switch kind {
	case model.ClientClaude:
		return NewClaudeInspector(reg, opts...), nil
	case model.ClientZed:
		return NewZedInspector(reg, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported client kind %q", kind)
	}
}

// readConfig reads a client config file, distinguishing absent from
// unreadable. A nil data result with nil error means the file doesn't
// exist and the client should be treated as not installed.
func readConfig(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, path, err)
	}
	return data, nil
}
