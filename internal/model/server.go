package model

import "fmt"

// RegistryServer is one entry in the known-server catalog. Command and Args
// form the canonical launch template used for structural matching.
type RegistryServer struct {
	ID          string   `yaml:"id" json:"id"`
	Command     string   `yaml:"command" json:"command"`
	Args        []string `yaml:"args" json:"args"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Homepage    string   `yaml:"homepage,omitempty" json:"homepage,omitempty"`
}

// InstalledEntry is one reconciled server reference found in a client's
// config. ServerID is a catalog ID when Recognized, otherwise the client's
// own key for the entry (display only).
type InstalledEntry struct {
	Client     ClientKind `json:"client"`
	ServerID   string     `json:"serverId"`
	Recognized bool       `json:"recognized"`
}

// ClientKind identifies a supported AI client application.
type ClientKind string

const (
	ClientClaude ClientKind = "claude"
	ClientZed    ClientKind = "zed"
)

// AllClientKinds returns the supported clients in display order.
func AllClientKinds() []ClientKind {
	return []ClientKind{ClientClaude, ClientZed}
}

// ParseClientKind converts a user-supplied client name to a ClientKind.
func ParseClientKind(s string) (ClientKind, error) {
	switch ClientKind(s) {
	case ClientClaude:
		return ClientClaude, nil
	case ClientZed:
		return ClientZed, nil
	default:
		return "", fmt.Errorf("unknown client %q (expected claude or zed)", s)
	}
}

// DisplayName returns the human-readable application name.
func (k ClientKind) DisplayName() string {
	switch k {
	case ClientClaude:
		return "Claude Desktop"
	case ClientZed:
		return "Zed"
	default:
		return string(k)
	}
}
