//go:build !windows

package fsutil

import (
	"errors"
	"io/fs"
	"syscall"
)

// isNotExist treats ENOTDIR as missing: a regular file sitting where a directory
// component is expected means the content is not there.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func isReadOnlyFS(err error) bool {
	return errors.Is(err, syscall.EROFS)
}
