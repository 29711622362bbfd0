package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := filepath.Join("mnt", "cache")

	tests := []struct {
		name        string
		contentPath string
		want        string
	}{
		{
			name:        "absolute content path is made relative",
			contentPath: "/data/torrents/movie",
			want:        filepath.Join(root, "data", "torrents", "movie"),
		},
		{
			name:        "repeated leading separators",
			contentPath: "//data/file.mkv",
			want:        filepath.Join(root, "data", "file.mkv"),
		},
		{
			name:        "relative content path",
			contentPath: "data/file.mkv",
			want:        filepath.Join(root, "data", "file.mkv"),
		},
		{
			name:        "empty content path resolves to root",
			contentPath: "",
			want:        root,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(root, tt.contentPath))
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.mkv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing.mkv"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok, "directories count as existing content")
}

func TestExistsFileAsDirectoryComponent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("ENOTDIR semantics are unix specific")
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := Exists(filepath.Join(file, "child"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExistsPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("requires unix permissions and a non-root user")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "f"), []byte("x"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	_, err := Exists(filepath.Join(locked, "f"))
	require.Error(t, err)
	assert.True(t, IsPermission(err))
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	ok, err := IsDir(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsDir(file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsDir(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "state.json")

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
