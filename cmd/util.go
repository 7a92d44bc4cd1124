package cmd

import (
	"github.com/mlatman/mcpls/internal/config"
	"github.com/mlatman/mcpls/internal/registry"
)

// loadRegistry loads the server catalog, honoring the MCPLS_REGISTRY
// override so operators can point at their own catalog file.
func loadRegistry(settings config.Settings) (*registry.Registry, error) {
	if settings.RegistryPath != "" {
		return registry.LoadFile(settings.RegistryPath)
	}
	return registry.Load()
}
