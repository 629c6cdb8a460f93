package studipsync_test

import (
	"testing"
	"time"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const folderURL = "https://studip.uni-passau.de/studip/folder.php"

func TestDownloadEntry_Hash(t *testing.T) {
	t.Parallel()

	t.Run("uses file ID", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{URL: folderURL + "?file_id=f00d&folder_id=cafe"}

		assert.Equal(t, "f00d", e.Hash())
	})

	t.Run("falls back to folder ID", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{URL: folderURL + "?folder_id=cafe"}

		assert.Equal(t, "cafe", e.Hash())
	})

	t.Run("hashes URL without IDs", func(t *testing.T) {
		t.Parallel()

		a := studipsync.DownloadEntry{URL: folderURL + "?cmd=tree"}
		b := studipsync.DownloadEntry{URL: folderURL + "?cmd=all"}

		assert.True(t, len(a.Hash()) > 1 && a.Hash()[0] == '?')
		assert.Equal(t, a.Hash(), a.Hash())
		assert.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestDownloadEntry_IsFolder(t *testing.T) {
	t.Parallel()

	assert.True(t, studipsync.DownloadEntry{URL: folderURL + "?folder_id=cafe"}.IsFolder())
	assert.False(t, studipsync.DownloadEntry{URL: folderURL + "?file_id=f00d"}.IsFolder())
	assert.False(t, studipsync.DownloadEntry{URL: "%%"}.IsFolder())
}

func TestDownloadEntry_Changed(t *testing.T) {
	t.Parallel()

	assert.True(t, studipsync.DownloadEntry{URL: folderURL + "?file_id=1&newestOnly=true"}.Changed())
	assert.False(t, studipsync.DownloadEntry{URL: folderURL + "?file_id=1&newestOnly=false"}.Changed())
	assert.False(t, studipsync.DownloadEntry{URL: folderURL + "?file_id=1"}.Changed())
}

func TestDownloadEntry_FileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry studipsync.DownloadEntry
		want  string
	}{
		{
			name:  "prefers file_name parameter",
			entry: studipsync.DownloadEntry{DisplayName: "Slides", URL: folderURL + "?file_id=1&file_name=slides01.pdf"},
			want:  "slides01.pdf",
		},
		{
			name:  "falls back to display name",
			entry: studipsync.DownloadEntry{DisplayName: "Übung (Blatt 1): Lösung", URL: folderURL + "?file_id=1"},
			want:  "Uebung_Blatt_1_Loesung",
		},
		{
			name:  "decodes ISO-8859-1 parameter",
			entry: studipsync.DownloadEntry{URL: folderURL + "?file_id=1&file_name=%C4nderungen%20gro%DF.pdf"},
			want:  "Aenderungen_gross.pdf",
		},
		{
			name:  "removes path separators",
			entry: studipsync.DownloadEntry{DisplayName: `a/b\c`},
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.entry.FileName())
		})
	}
}

func TestDownloadEntry_ModTime(t *testing.T) {
	t.Parallel()

	t.Run("parses portal timestamp", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{LastModified: "26.08.2013 - 20:38"}

		got, err := e.ModTime(nil)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2013, 8, 26, 20, 38, 0, 0, time.UTC), got)
	})

	t.Run("uses given location", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("CEST", 2*60*60)
		e := studipsync.DownloadEntry{LastModified: "01.04.2014 - 08:00"}

		got, err := e.ModTime(loc)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2014, 4, 1, 6, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{LastModified: "yesterday"}

		_, err := e.ModTime(nil)

		assert.Equal(t, studipsync.EINVALID, studipsync.ErrorCode(err))
	})
}

func TestDownloadEntry_FullURLAndDiffURL(t *testing.T) {
	t.Parallel()

	t.Run("sets newestOnly", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{URL: folderURL + "?file_id=1&newestOnly=true"}

		full, err := e.FullURL()
		require.NoError(t, err)
		assert.Equal(t, folderURL+"?file_id=1&newestOnly=false", full)

		diff, err := e.DiffURL()
		require.NoError(t, err)
		assert.Equal(t, folderURL+"?file_id=1&newestOnly=true", diff)
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		e := studipsync.DownloadEntry{URL: "http://[::1"}

		_, err := e.FullURL()

		assert.Equal(t, studipsync.EINVALID, studipsync.ErrorCode(err))
	})
}
