// Package testutil provides shared test helpers used across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes contents to name inside a fresh temp dir and returns
// the full path. Used to stand up client config fixtures.
func WriteConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
