package main

import (
	"fmt"
	"strings"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/extract"
	"github.com/N-Coder/studip-sync/goquery"
	locslog "github.com/N-Coder/studip-sync/slog"
)

// Run executes the seminars command.
func (c *SeminarsCmd) Run(deps *Dependencies) error {
	ext, err := extract.NewSeminars(deps.Selector, deps.Config.Seminars)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studipsync.ErrorMessage(err))
		return err
	}
	extractor := locslog.NewLoggingSeminarExtractor(ext, deps.Logger)

	return process(deps, c.Files, func(doc *goquery.Document) (string, error) {
		res, err := extractor.ExtractSeminars(doc.Root())
		if res == nil {
			return "", err
		}

		if c.Table {
			lines := make([]string, 0, len(res.Entries))
			for _, s := range res.Entries {
				lines = append(lines, strings.Join([]string{s.Hash(), s.ID(), s.Type(), s.Title(), s.Period()}, "\t"))
			}
			return strings.Join(lines, "\n"), err
		}

		out, encErr := deps.Encoder.EncodeSeminars(res.Entries)
		if encErr != nil {
			return "", encErr
		}
		return out, err
	})
}
