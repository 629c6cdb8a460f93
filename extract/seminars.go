package extract

import (
	"errors"

	studipsync "github.com/N-Coder/studip-sync"
)

// Ensure Seminars implements studipsync.SeminarExtractor at compile time.
var _ studipsync.SeminarExtractor = (*Seminars)(nil)

// Seminars reads the seminar table of the "my seminars" page. The source
// markup encodes name and description as two font elements inside a single
// anchor.
type Seminars struct {
	sel studipsync.Selector
	cfg SeminarConfig
}

// NewSeminars creates a Seminars extractor. Returns EINVALID if cfg is
// incomplete or one of its selectors does not compile.
func NewSeminars(sel studipsync.Selector, cfg SeminarConfig) (*Seminars, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := compileCheck(sel, cfg.selectors()); err != nil {
		return nil, err
	}
	return &Seminars{sel: sel, cfg: cfg}, nil
}

// ExtractSeminars returns one entry per data row. Rows not wider than
// MinCells are header or footer rows and are skipped as ineligible.
func (s *Seminars) ExtractSeminars(root studipsync.Node) (*studipsync.SeminarResult, error) {
	rows := s.sel.Select(s.cfg.RowSelector, root)

	res := &studipsync.SeminarResult{
		Entries: make([]studipsync.SeminarEntry, 0, len(rows)),
		Report:  studipsync.Report{Candidates: len(rows)},
	}
	var faults []error

	for i, row := range rows {
		if len(s.sel.Select(s.cfg.CellSelector, row)) <= s.cfg.MinCells {
			res.Report.Skips = append(res.Report.Skips, studipsync.Skip{Row: i, Reason: studipsync.SkipIneligible})
			continue
		}

		entry, field := s.entry(row)
		if field != "" {
			res.Report.Skips = append(res.Report.Skips, studipsync.Skip{Row: i, Reason: studipsync.SkipUnresolved, Field: field})
			if s.cfg.Policy == studipsync.PolicyReport {
				faults = append(faults, studipsync.Errorf(studipsync.EEXTRACT, "seminar row %d: %s not found", i, field))
			}
			continue
		}

		res.Entries = append(res.Entries, entry)
	}

	return res, errors.Join(faults...)
}

// entry builds the record for an eligible row. It returns the name of the
// missing field if the row cannot be read.
func (s *Seminars) entry(row studipsync.Node) (studipsync.SeminarEntry, string) {
	info := first(s.sel.Select(s.cfg.InfoSelector, row))
	if info == nil {
		return studipsync.SeminarEntry{}, "info"
	}

	segments := s.sel.Select(s.cfg.SegmentSelector, info)
	switch len(segments) {
	case 0:
		return studipsync.SeminarEntry{}, "name"
	case 1:
		return studipsync.SeminarEntry{}, "description"
	}

	return studipsync.SeminarEntry{
		URL:         info.Href(),
		Name:        segments[0].Text(),
		Description: segments[1].Text(),
	}, ""
}
