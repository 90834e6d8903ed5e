package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/distfile/pkg/filesystem"
	"github.com/arthur-debert/distfile/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// CreateFileT writes content to path on fs, creating parent directories.
func CreateFileT(t *testing.T, fs types.FS, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// ReadFileT reads path from fs as a string.
func ReadFileT(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// ExistsT reports whether path exists on fs.
func ExistsT(t *testing.T, fs types.FS, path string) bool {
	t.Helper()

	_, err := fs.Stat(path)
	return err == nil
}
