package qbittorrent

import "errors"

// Common errors returned by the qBittorrent client.
var (
	// ErrAuthFailed is returned when qBittorrent rejects the supplied credentials.
	ErrAuthFailed = errors.New("failed to login: invalid username/password")

	// ErrConnectionFailed is returned when qBittorrent cannot be reached.
	ErrConnectionFailed = errors.New("unable to connect to the client")

	// ErrInvalidStatusFilter is returned for a status filter qBittorrent does not know.
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)
