package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/blang/semver"
	"github.com/goccy/go-json"
	"github.com/valyala/fastjson"

	"github.com/s0up4200/qbit-mover/fsutil"
)

// SchemaVersion is written into every new state file.
const SchemaVersion = "1.0"

// timestampLayouts are accepted when loading. Files written by older tooling
// carry a naive ISO-8601 local time without an offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// PauseState is the hand-off record between the pause and resume phases.
type PauseState struct {
	TorrentHashes []string  `json:"torrent_hashes"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
}

// HashSet returns the saved hashes as a set.
func (s *PauseState) HashSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.TorrentHashes))
	for _, h := range s.TorrentHashes {
		set[h] = struct{}{}
	}
	return set
}

// Store reads and writes the state file at a fixed path.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a Store for path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Save records hashes as the torrents paused in this cycle, replacing any existing
// file. The write goes through a temporary file in the same directory, so the
// state file is either complete or untouched.
func (s *Store) Save(hashes []string) (*PauseState, error) {
	if hashes == nil {
		hashes = []string{}
	}
	st := &PauseState{
		TorrentHashes: hashes,
		Timestamp:     s.now(),
		Version:       SchemaVersion,
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return nil, s.fail("save", err)
	}
	dir := filepath.Dir(abs)

	isDir, err := fsutil.IsDir(dir)
	if err != nil {
		return nil, s.fail("save", err)
	}
	if !isDir {
		return nil, s.fail("save", fmt.Errorf("%w: %s", ErrDirMissing, dir))
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, s.fail("save", fmt.Errorf("failed to encode state: %w", err))
	}

	if err := fsutil.WriteFileAtomic(abs, data, 0o644); err != nil {
		switch {
		case fsutil.IsPermission(err):
			return nil, s.fail("save", fmt.Errorf("%w: %s: %w", ErrDirNotWritable, dir, err))
		case errors.Is(err, fs.ErrNotExist):
			return nil, s.fail("save", fmt.Errorf("%w: %s: %w", ErrDirMissing, dir, err))
		default:
			return nil, s.fail("save", err)
		}
	}

	return st, nil
}

// Load reads the state file. Missing, corrupted and schema-invalid files fail
// with ErrNotFound, ErrCorrupted and ErrInvalid respectively.
func (s *Store) Load() (*PauseState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, s.fail("load", ErrNotFound)
		}
		return nil, s.fail("load", err)
	}

	st, err := decode(data)
	if err != nil {
		return nil, s.fail("load", err)
	}
	return st, nil
}

// Delete removes the state file. A file that is already gone is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s.fail("delete", err)
	}
	return nil
}

func (s *Store) fail(op string, err error) error {
	return &Error{Op: op, Path: s.path, Err: err}
}

func decode(data []byte) (*PauseState, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrCorrupted, v.Type())
	}

	hashesValue := v.Get("torrent_hashes")
	if hashesValue == nil {
		return nil, fmt.Errorf("%w: torrent_hashes", ErrInvalid)
	}
	items, err := hashesValue.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: torrent_hashes must be an array: %v", ErrInvalid, err)
	}
	hashes := make([]string, 0, len(items))
	for i, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: torrent_hashes[%d] must be a string", ErrInvalid, i)
		}
		hashes = append(hashes, string(b))
	}

	tsValue := v.Get("timestamp")
	if tsValue == nil {
		return nil, fmt.Errorf("%w: timestamp", ErrInvalid)
	}
	tsBytes, err := tsValue.StringBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp must be a string", ErrInvalid)
	}
	ts, err := parseTimestamp(string(tsBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	version := SchemaVersion
	if versionValue := v.Get("version"); versionValue != nil {
		switch versionValue.Type() {
		case fastjson.TypeString:
			version = string(versionValue.GetStringBytes())
		case fastjson.TypeNumber:
			version = versionValue.String()
		}
	}

	return &PauseState{
		TorrentHashes: hashes,
		Timestamp:     ts,
		Version:       version,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q is not ISO-8601", s)
}

// Compatible reports whether the record's version shares SchemaVersion's major.
// The version is informational; Load accepts any value.
func (s *PauseState) Compatible() bool {
	current := semver.MustParse(SchemaVersion + ".0")

	v, err := semver.ParseTolerant(s.Version)
	if err != nil {
		return false
	}
	return v.Major == current.Major
}
