package state

import (
	"errors"
	"fmt"
)

// Error kinds for state file operations, matched with errors.Is.
var (
	// ErrNotFound is returned by Load when no state file exists.
	ErrNotFound = errors.New("no state file found, did you run with 'pause' first?")

	// ErrCorrupted is returned by Load when the file is not a JSON object.
	ErrCorrupted = errors.New("state file is corrupted")

	// ErrInvalid is returned by Load when required fields are missing or malformed.
	ErrInvalid = errors.New("state file is missing required fields")

	// ErrDirMissing is returned by Save when the target directory does not exist.
	ErrDirMissing = errors.New("directory does not exist")

	// ErrDirNotWritable is returned by Save when the target directory cannot be written.
	ErrDirNotWritable = errors.New("directory is not writable")
)

// Error describes a failed state file operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s state file %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
