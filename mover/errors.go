package mover

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when options are rejected before any I/O.
var ErrInvalidOptions = errors.New("invalid options")

// ActionError reports the torrent whose pause or resume failed. Completed is the
// number of torrents the action had already been applied to.
type ActionError struct {
	Action    Action
	Hash      string
	Name      string
	Completed int
	Err       error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("failed to %s torrent %s (%s) after %d succeeded: %v", e.Action, e.Name, e.Hash, e.Completed, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
