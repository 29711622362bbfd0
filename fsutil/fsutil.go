// Package fsutil holds the filesystem helpers used to locate torrent content on
// the cache tier and to persist the pause state safely.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve joins contentPath under root. The content path reported by the client is
// treated as relative, so any leading separators are stripped before joining.
func Resolve(root, contentPath string) string {
	rel := strings.TrimLeft(contentPath, "/"+string(filepath.Separator))
	return filepath.Join(root, rel)
}

// Exists reports whether path exists. A missing path is not an error; any other
// stat failure (permission denied, I/O error) is returned to the caller.
func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return fi.IsDir(), nil
}

// IsPermission reports whether err means the target cannot be written to,
// either because of access rights or a read-only filesystem.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission) || isReadOnlyFS(err)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it into
// place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	committed = true
	return nil
}
