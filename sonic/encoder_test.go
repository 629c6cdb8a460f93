package sonic_test

import (
	"testing"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_EncodeDownloads(t *testing.T) {
	t.Parallel()

	enc := sonic.NewEncoder()

	t.Run("empty input encodes as empty array", func(t *testing.T) {
		t.Parallel()

		out, err := enc.EncodeDownloads(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)

		out, err = enc.EncodeDownloads([]studipsync.DownloadEntry{})
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("keeps field order and literal ampersands", func(t *testing.T) {
		t.Parallel()

		out, err := enc.EncodeDownloads([]studipsync.DownloadEntry{
			{
				DisplayName:  "Allgemeiner Dateiordner",
				URL:          "https://studip.uni-passau.de/studip/folder.php?cmd=all&folder_id=f1",
				LastModified: "26.08.2013 - 20:38",
				Level:        0,
			},
			{DisplayName: "Übung <1>", URL: "u", LastModified: "", Level: -1},
		})

		require.NoError(t, err)
		assert.Equal(t,
			`[{"displayName":"Allgemeiner Dateiordner","url":"https://studip.uni-passau.de/studip/folder.php?cmd=all&folder_id=f1","lastModified":"26.08.2013 - 20:38","level":0},`+
				`{"displayName":"Übung <1>","url":"u","lastModified":"","level":-1}]`,
			out)
	})
}

func TestEncoder_EncodeSeminars(t *testing.T) {
	t.Parallel()

	enc := sonic.NewEncoder()

	t.Run("empty input encodes as empty array", func(t *testing.T) {
		t.Parallel()

		out, err := enc.EncodeSeminars(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("keeps field order", func(t *testing.T) {
		t.Parallel()

		out, err := enc.EncodeSeminars([]studipsync.SeminarEntry{
			{URL: "https://x/y", Name: "Intro to X", Description: "A survey course"},
		})

		require.NoError(t, err)
		assert.Equal(t, `[{"url":"https://x/y","name":"Intro to X","description":"A survey course"}]`, out)
	})
}
