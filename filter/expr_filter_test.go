package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/qbit-mover/qbittorrent"
)

func TestCompileExprFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("movies")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown identifier",
			expression: `Ratio > 2`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Size + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `Category == "radarr" and Size > 1024 and daysSince(AddedOn) < 7 and not isPaused()`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileExprFilter(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
		})
	}
}

func TestExprFilterMatch(t *testing.T) {
	tor := &qbittorrent.TorrentInfo{
		Hash:     "abc",
		Name:     "Some.Movie.2023.1080p",
		Category: "radarr",
		Tags:     []string{"Movies", "cross-seed"},
		State:    "stalledUP",
		Size:     8 << 30,
		AddedOn:  time.Now().Add(-36 * time.Hour),
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`hasTag("movies")`, true},
		{`hasTag("tv")`, false},
		{`Category == "radarr"`, true},
		{`containsFold(Name, "1080P")`, true},
		{`hasPrefix(Name, "some.movie")`, true},
		{`hasSuffix(Name, ".720p")`, false},
		{`lower(Name) contains "1080p"`, true},
		{`Name startsWith "Some"`, true},
		{`Name endsWith "1080p"`, true},
		{`isSeeding()`, true},
		{`isPaused()`, false},
		{`daysSince(AddedOn) == 1`, true},
		{`AddedOn > daysAgo(1)`, false},
		{`Torrent.Hash == "abc"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := CompileExprFilter(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(tor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExprFilterTightensSelection(t *testing.T) {
	torrents := []*qbittorrent.TorrentInfo{
		{Hash: "a", Category: "radarr", AddedOn: daysAgo(0.5)},
		{Hash: "b", Category: "sonarr", AddedOn: daysAgo(1)},
		{Hash: "c", Category: "radarr", AddedOn: daysAgo(1.5)},
		{Hash: "d", Category: "radarr", AddedOn: daysAgo(3)},
	}
	requireNewestFirst(t, torrents)

	f, err := CompileExprFilter(`Category == "radarr"`)
	require.NoError(t, err)

	got, err := Select(torrents, mustWindow(t, 0, 2), CacheFilter{}, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, hashes(got))
}
