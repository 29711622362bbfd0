package filter

import (
	"fmt"
	"time"
)

// Window selects torrents added between To (older bound) and From (newer bound),
// both inclusive. To never lies after From.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow builds the window covering daysFrom to daysTo days before now.
func NewWindow(now time.Time, daysFrom, daysTo int) (Window, error) {
	if daysFrom < 0 || daysTo < 0 {
		return Window{}, fmt.Errorf("%w: days must not be negative (days_from=%d, days_to=%d)", ErrInvalidWindow, daysFrom, daysTo)
	}
	if daysFrom > daysTo {
		return Window{}, fmt.Errorf("%w: days_from (%d) must be set lower than days_to (%d)", ErrInvalidWindow, daysFrom, daysTo)
	}

	return Window{
		From: now.Add(-time.Duration(daysFrom) * 24 * time.Hour),
		To:   now.Add(-time.Duration(daysTo) * 24 * time.Hour),
	}, nil
}

// Contains reports whether t lies inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.To) && !t.After(w.From)
}

// Passed reports whether t is older than the window's older bound.
func (w Window) Passed(t time.Time) bool {
	return t.Before(w.To)
}
