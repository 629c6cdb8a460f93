package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/mock"
	locslog "github.com/N-Coder/studip-sync/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDownloadExtractor_ExtractDownloads(t *testing.T) {
	t.Parallel()

	t.Run("logs pass summary with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &studipsync.DownloadResult{
			Entries: []studipsync.DownloadEntry{{DisplayName: "Ordner"}},
			Report: studipsync.Report{
				Candidates: 4,
				Skips: []studipsync.Skip{
					{Row: 0, Reason: studipsync.SkipIneligible},
					{Row: 1, Reason: studipsync.SkipIneligible},
					{Row: 3, Reason: studipsync.SkipUnresolved, Field: "time"},
				},
			},
		}
		inner := &mock.DownloadExtractor{
			ExtractDownloadsFn: func(root studipsync.Node) (*studipsync.DownloadResult, error) {
				return want, nil
			},
		}

		ext := locslog.NewLoggingDownloadExtractor(inner, logger)
		res, err := ext.ExtractDownloads(&mock.Node{})

		require.NoError(t, err)
		assert.Same(t, want, res)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "download extraction")
		assert.Contains(t, output, "candidates=4")
		assert.Contains(t, output, "entries=1")
		assert.Contains(t, output, "ineligible=2")
		assert.Contains(t, output, "unresolved=1")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "row skipped")
	})

	t.Run("logs skipped rows at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.DownloadExtractor{
			ExtractDownloadsFn: func(root studipsync.Node) (*studipsync.DownloadResult, error) {
				return &studipsync.DownloadResult{Report: studipsync.Report{
					Candidates: 1,
					Skips:      []studipsync.Skip{{Row: 0, Reason: studipsync.SkipUnresolved, Field: "link"}},
				}}, nil
			},
		}

		ext := locslog.NewLoggingDownloadExtractor(inner, logger)
		_, err := ext.ExtractDownloads(&mock.Node{})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "row skipped")
		assert.Contains(t, output, "row=0")
		assert.Contains(t, output, "reason=unresolved")
		assert.Contains(t, output, "field=link")
	})

	t.Run("warns when no candidate rows were found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DownloadExtractor{
			ExtractDownloadsFn: func(root studipsync.Node) (*studipsync.DownloadResult, error) {
				return &studipsync.DownloadResult{Entries: []studipsync.DownloadEntry{}}, nil
			},
		}

		ext := locslog.NewLoggingDownloadExtractor(inner, logger)
		_, _ = ext.ExtractDownloads(&mock.Node{})

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "candidates=0")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		rowErr := studipsync.Errorf(studipsync.EEXTRACT, "download row 2: link not found")
		inner := &mock.DownloadExtractor{
			ExtractDownloadsFn: func(root studipsync.Node) (*studipsync.DownloadResult, error) {
				return &studipsync.DownloadResult{Report: studipsync.Report{Candidates: 3}}, rowErr
			},
		}

		ext := locslog.NewLoggingDownloadExtractor(inner, logger)
		_, err := ext.ExtractDownloads(&mock.Node{})

		assert.Equal(t, rowErr, err)
		assert.Contains(t, buf.String(), "download row 2: link not found")
	})
}

func TestLoggingSeminarExtractor_ExtractSeminars(t *testing.T) {
	t.Parallel()

	t.Run("logs pass summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SeminarExtractor{
			ExtractSeminarsFn: func(root studipsync.Node) (*studipsync.SeminarResult, error) {
				return &studipsync.SeminarResult{
					Entries: []studipsync.SeminarEntry{{Name: "a"}, {Name: "b"}},
					Report: studipsync.Report{
						Candidates: 3,
						Skips:      []studipsync.Skip{{Row: 0, Reason: studipsync.SkipIneligible}},
					},
				}, nil
			},
		}

		ext := locslog.NewLoggingSeminarExtractor(inner, logger)
		res, err := ext.ExtractSeminars(&mock.Node{})

		require.NoError(t, err)
		assert.Len(t, res.Entries, 2)
		output := buf.String()
		assert.Contains(t, output, "seminar extraction")
		assert.Contains(t, output, "candidates=3")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "ineligible=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("handles nil result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SeminarExtractor{
			ExtractSeminarsFn: func(root studipsync.Node) (*studipsync.SeminarResult, error) {
				return nil, studipsync.Errorf(studipsync.EINTERNAL, "boom")
			},
		}

		ext := locslog.NewLoggingSeminarExtractor(inner, logger)
		res, err := ext.ExtractSeminars(&mock.Node{})

		assert.Nil(t, res)
		assert.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
	})
}
