package slog

import (
	"context"
	"log/slog"
	"time"

	studipsync "github.com/N-Coder/studip-sync"
)

// Ensure the logging decorators implement the extractor interfaces.
var (
	_ studipsync.DownloadExtractor = (*LoggingDownloadExtractor)(nil)
	_ studipsync.SeminarExtractor  = (*LoggingSeminarExtractor)(nil)
)

// LoggingDownloadExtractor wraps a DownloadExtractor with pass logging.
type LoggingDownloadExtractor struct {
	next   studipsync.DownloadExtractor
	logger *slog.Logger
}

// NewLoggingDownloadExtractor creates a new LoggingDownloadExtractor.
func NewLoggingDownloadExtractor(next studipsync.DownloadExtractor, logger *slog.Logger) *LoggingDownloadExtractor {
	return &LoggingDownloadExtractor{next: next, logger: logger}
}

// ExtractDownloads delegates to the wrapped extractor and logs the pass
// summary, plus one debug line per skipped row.
func (e *LoggingDownloadExtractor) ExtractDownloads(root studipsync.Node) (res *studipsync.DownloadResult, err error) {
	defer func(begin time.Time) {
		var report *studipsync.Report
		entries := 0
		if res != nil {
			report = &res.Report
			entries = len(res.Entries)
		}
		logPass(e.logger, "download extraction", report, entries, time.Since(begin), err)
	}(time.Now())
	return e.next.ExtractDownloads(root)
}

// LoggingSeminarExtractor wraps a SeminarExtractor with pass logging.
type LoggingSeminarExtractor struct {
	next   studipsync.SeminarExtractor
	logger *slog.Logger
}

// NewLoggingSeminarExtractor creates a new LoggingSeminarExtractor.
func NewLoggingSeminarExtractor(next studipsync.SeminarExtractor, logger *slog.Logger) *LoggingSeminarExtractor {
	return &LoggingSeminarExtractor{next: next, logger: logger}
}

// ExtractSeminars delegates to the wrapped extractor and logs the pass
// summary, plus one debug line per skipped row.
func (e *LoggingSeminarExtractor) ExtractSeminars(root studipsync.Node) (res *studipsync.SeminarResult, err error) {
	defer func(begin time.Time) {
		var report *studipsync.Report
		entries := 0
		if res != nil {
			report = &res.Report
			entries = len(res.Entries)
		}
		logPass(e.logger, "seminar extraction", report, entries, time.Since(begin), err)
	}(time.Now())
	return e.next.ExtractSeminars(root)
}

func logPass(logger *slog.Logger, msg string, report *studipsync.Report, entries int, d time.Duration, err error) {
	if report == nil {
		report = &studipsync.Report{}
	}

	for _, s := range report.Skips {
		logger.Debug("row skipped",
			"pass", msg,
			"row", s.Row,
			"reason", string(s.Reason),
			"field", s.Field,
		)
	}

	level := slog.LevelInfo
	if report.StructuralMismatch() {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, msg,
		"candidates", report.Candidates,
		"entries", entries,
		"ineligible", report.Count(studipsync.SkipIneligible),
		"unresolved", report.Count(studipsync.SkipUnresolved),
		"duration", d,
		"err", err,
	)
}
