package qbittorrent

import (
	"strings"
	"time"

	"github.com/autobrr/go-qbittorrent"
)

// TorrentInfo contains information about a torrent
type TorrentInfo struct {
	Hash        string
	Name        string
	SavePath    string
	ContentPath string
	State       string
	Size        int64
	Progress    float64
	AddedOn     time.Time
	Category    string
	Tags        []string
}

// IsActivelySeeding checks if the torrent is actively seeding
func (t *TorrentInfo) IsActivelySeeding() bool {
	return t.State == "uploading" || t.State == "stalledUP" || t.State == "queuedUP" || t.State == "forcedUP"
}

// IsPaused reports whether qBittorrent currently has the torrent paused or stopped.
func (t *TorrentInfo) IsPaused() bool {
	switch t.State {
	case "pausedUP", "pausedDL", "stoppedUP", "stoppedDL":
		return true
	}
	return false
}

// GetFullPath returns the full path to the torrent content
func (t *TorrentInfo) GetFullPath() string {
	if t.ContentPath != "" {
		return t.ContentPath
	}
	return t.SavePath + "/" + t.Name
}

func newTorrentInfo(t qbittorrent.Torrent) *TorrentInfo {
	var tags []string
	for _, tag := range strings.Split(t.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return &TorrentInfo{
		Hash:        t.Hash,
		Name:        t.Name,
		SavePath:    t.SavePath,
		ContentPath: t.ContentPath,
		State:       string(t.State),
		Size:        t.Size,
		Progress:    t.Progress,
		AddedOn:     time.Unix(t.AddedOn, 0),
		Category:    t.Category,
		Tags:        tags,
	}
}
