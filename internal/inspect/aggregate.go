package inspect

import (
	"fmt"

	"github.com/mlatman/mcpls/internal/logger"
	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/registry"
)

// Section holds one client's reconciled entries. Entries is empty when the
// client isn't installed or has nothing configured.
type Section struct {
	Client  model.ClientKind
	Entries []model.InstalledEntry
}

// Report is the merged result of inspecting one or more clients.
type Report struct {
	Sections []Section
	FoundAny bool
}

// Run inspects the selected clients and merges their results. An empty
// kinds slice selects every supported client; in that mode an individual
// client's unavailable config is logged and suppressed so one broken config
// can't hide another client's servers. An explicitly selected client's
// failure is returned to the caller.
//
// Sections always appear in the fixed client display order, and each
// inspection is a single bounded file read, run sequentially.
func Run(reg *registry.Registry, kinds []model.ClientKind, opts ...Option) (Report, error) {
	explicit := len(kinds) > 0
	if !explicit {
		kinds = model.AllClientKinds()
	}
	supported := make(map[model.ClientKind]bool)
	for _, k := range model.AllClientKinds() {
		supported[k] = true
	}
	selected := make(map[model.ClientKind]bool, len(kinds))
	for _, k := range kinds {
		if !supported[k] {
			return Report{}, fmt.Errorf("unsupported client kind %q", k)
		}
		selected[k] = true
	}

	var report Report
	for _, kind := range model.AllClientKinds() {
		if !selected[kind] {
			continue
		}

		ins, err := For(kind, reg, opts...)
		if err != nil {
			return Report{}, err
		}

		entries, err := ins.Inspect()
		if err != nil {
			if explicit {
				return Report{}, err
			}
			logger.Debug("skipping client with unavailable config", "client", kind, "error", err)
			entries = nil
		}

		report.Sections = append(report.Sections, Section{Client: kind, Entries: entries})
		if len(entries) > 0 {
			report.FoundAny = true
		}
	}
	return report, nil
}
