package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// createTempJournal writes content into a journal file in a temporary folder.
func createTempJournal(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.journal")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp journal: %v", err)
	}
	return path
}

// withConfig replaces the global configuration for the duration of the test.
func withConfig(t *testing.T, cfg *Config) {
	t.Helper()
	old := config
	config = cfg
	t.Cleanup(func() { config = old })
}
