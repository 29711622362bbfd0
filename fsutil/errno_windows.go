//go:build windows

package fsutil

import (
	"errors"
	"io/fs"
)

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// isReadOnlyFS always returns false on Windows; read-only volumes surface as
// access denied, which fs.ErrPermission already covers.
func isReadOnlyFS(err error) bool {
	return false
}
