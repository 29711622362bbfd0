// Package qbittorrent provides a client for interacting with the qBittorrent Web API.
//
// This package wraps the autobrr/go-qbittorrent library with the small surface the
// mover coordinator needs: authenticate, list torrents newest first, and pause or
// resume a single torrent.
//
// # Features
//
//   - Login with distinguished errors for bad credentials and unreachable hosts
//   - Torrent listing by status filter, sort key and direction
//   - Per-torrent pause and resume
//   - Context-aware operations for graceful cancellation
//
// # Usage
//
//	client, err := qbittorrent.Connect(ctx, qbittorrent.Config{
//	    Host:     "http://localhost:8080",
//	    Username: "admin",
//	    Password: "adminadmin",
//	}, logger)
//	if errors.Is(err, qbittorrent.ErrAuthFailed) {
//	    // wrong credentials
//	}
//
//	torrents, err := client.ListTorrents(ctx, qbittorrent.ListOptions{
//	    Status:  "completed",
//	    Sort:    qbittorrent.SortAddedOn,
//	    Reverse: true,
//	})
package qbittorrent
