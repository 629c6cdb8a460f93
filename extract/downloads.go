// Package extract implements the extraction rules for the downloads and
// seminars pages. Extractors locate every node through a
// studipsync.Selector and degrade by omission: rows that do not fit the
// expected shape are skipped and counted rather than failing the pass.
package extract

import (
	"errors"
	"strings"

	studipsync "github.com/N-Coder/studip-sync"
)

// Ensure Downloads implements studipsync.DownloadExtractor at compile time.
var _ studipsync.DownloadExtractor = (*Downloads)(nil)

// Downloads flattens the nested folder tables of the downloads page.
type Downloads struct {
	sel studipsync.Selector
	cfg DownloadConfig
}

// NewDownloads creates a Downloads extractor. Returns EINVALID if cfg is
// incomplete or one of its selectors does not compile.
func NewDownloads(sel studipsync.Selector, cfg DownloadConfig) (*Downloads, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := compileCheck(sel, cfg.selectors()); err != nil {
		return nil, err
	}
	return &Downloads{sel: sel, cfg: cfg}, nil
}

// ExtractDownloads walks the candidate rows and returns one entry per row
// that carries a name, a link and a timestamp.
func (d *Downloads) ExtractDownloads(root studipsync.Node) (*studipsync.DownloadResult, error) {
	rows := d.sel.Select(d.cfg.RowSelector, root)

	res := &studipsync.DownloadResult{
		Entries: make([]studipsync.DownloadEntry, 0, len(rows)),
		Report:  studipsync.Report{Candidates: len(rows)},
	}
	var faults []error

	for i, row := range rows {
		content := d.sel.Select(d.cfg.ContentSelector, row)
		if len(content) < d.cfg.MinContentCells {
			res.Report.Skips = append(res.Report.Skips, studipsync.Skip{Row: i, Reason: studipsync.SkipIneligible})
			continue
		}

		info := first(d.sel.Select(d.cfg.InfoSelector, content[1]))
		link := first(d.sel.Select(d.cfg.LinkSelector, content[2]))
		time := first(d.sel.Select(d.cfg.TimeSelector, content[2]))

		if field := unresolved(fieldNode{"info", info}, fieldNode{"link", link}, fieldNode{"time", time}); field != "" {
			res.Report.Skips = append(res.Report.Skips, studipsync.Skip{Row: i, Reason: studipsync.SkipUnresolved, Field: field})
			if d.cfg.Policy == studipsync.PolicyReport {
				faults = append(faults, studipsync.Errorf(studipsync.EEXTRACT, "download row %d: %s not found", i, field))
			}
			continue
		}

		insets := d.sel.Select(d.cfg.InsetSelector, row)

		res.Entries = append(res.Entries, studipsync.DownloadEntry{
			DisplayName:  info.Text(),
			URL:          link.Href(),
			LastModified: strings.TrimSpace(time.Text()),
			Level:        len(insets) - d.cfg.LevelOffset,
		})
	}

	return res, errors.Join(faults...)
}

type fieldNode struct {
	name string
	node studipsync.Node
}

// unresolved returns the name of the first field without a node.
func unresolved(fields ...fieldNode) string {
	for _, f := range fields {
		if f.node == nil {
			return f.name
		}
	}
	return ""
}

func first(nodes []studipsync.Node) studipsync.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
