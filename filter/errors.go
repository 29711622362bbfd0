package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned when a selection window is misconfigured.
var ErrInvalidWindow = errors.New("invalid selection window")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated for a torrent
	EvaluationError struct {
		FilterName  string
		TorrentName string
		Reason      string
		Err         error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for filter '%s' on torrent '%s': %s: %v", e.FilterName, e.TorrentName, e.Reason, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
