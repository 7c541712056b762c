// Package testutil provides shared helpers for tests that exercise the
// file-backed ride store.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StoreFile writes the given lines as a ride file inside a fresh temp
// directory and returns its path. The file is removed automatically when
// the test (and all its subtests) finish.
func StoreFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".bikerides")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil.StoreFile: %v", err)
	}
	return path
}

// MissingStoreFile returns a path inside a fresh temp directory where no
// file exists, the first-run state.
func MissingStoreFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".bikerides")
}

// ReadStoreFile returns the raw content of the ride file at path.
func ReadStoreFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil.ReadStoreFile: %v", err)
	}
	return string(data)
}
