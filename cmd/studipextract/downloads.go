package main

import (
	"fmt"
	"strings"
	"time"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/extract"
	"github.com/N-Coder/studip-sync/goquery"
	locslog "github.com/N-Coder/studip-sync/slog"
)

// Run executes the downloads command.
func (c *DownloadsCmd) Run(deps *Dependencies) error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: unknown time zone %q\n", c.Timezone)
		return studipsync.Errorf(studipsync.EINVALID, "unknown time zone %q", c.Timezone)
	}

	ext, err := extract.NewDownloads(deps.Selector, deps.Config.Downloads)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studipsync.ErrorMessage(err))
		return err
	}
	extractor := locslog.NewLoggingDownloadExtractor(ext, deps.Logger)

	return process(deps, c.Files, func(doc *goquery.Document) (string, error) {
		res, err := extractor.ExtractDownloads(doc.Root())
		if res == nil {
			return "", err
		}

		if c.Tree {
			return c.formatTree(res.Entries, loc), err
		}

		out, encErr := deps.Encoder.EncodeDownloads(res.Entries)
		if encErr != nil {
			return "", encErr
		}
		return out, err
	})
}

// formatTree prints one tab-separated line per entry:
// path, kind, changed marker, modification time and link.
func (c *DownloadsCmd) formatTree(entries []studipsync.DownloadEntry, loc *time.Location) string {
	lines := make([]string, 0, len(entries))
	for _, n := range studipsync.BuildDownloadTree(entries) {
		kind := "file"
		if n.Entry.IsFolder() {
			kind = "folder"
		}

		changed := "-"
		if n.Entry.Changed() {
			changed = "*"
		}

		modified := "-"
		if t, err := n.Entry.ModTime(loc); err == nil {
			modified = t.Format(time.RFC3339)
		}

		link, err := n.Entry.FullURL()
		if c.Diff {
			link, err = n.Entry.DiffURL()
		}
		if err != nil {
			link = n.Entry.URL
		}

		lines = append(lines, strings.Join([]string{n.Path(), kind, changed, modified, link}, "\t"))
	}
	return strings.Join(lines, "\n")
}
