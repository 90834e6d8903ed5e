package filesystem

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/distfile/pkg/types"
)

// IsFile reports whether name exists and is not a directory
func IsFile(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir reports whether name exists and is a directory
func IsDir(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies src to dst byte for byte, keeping the source permissions.
// An existing dst is removed first so a read-only copy can be replaced.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid}
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}
