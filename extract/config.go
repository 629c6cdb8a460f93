package extract

import (
	studipsync "github.com/N-Coder/studip-sync"
)

// Default selectors for the Stud.IP 2.x downloads and seminars pages. They
// describe one page layout and are overridable through the configs below.
const (
	DefaultDownloadRowSelector     = "#content>table>tbody>tr:nth-of-type(2)>td:nth-of-type(2)>table>tbody>tr>td>table"
	DefaultDownloadContentSelector = ">tbody>tr>td.printhead"
	DefaultDownloadInsetSelector   = `>tbody>tr>td.blank img[src="https://studip.uni-passau.de/studip/pictures/forumleer.gif"]`
	DefaultDownloadInfoSelector    = "a"
	DefaultDownloadLinkSelector    = "span > a"
	DefaultDownloadTimeSelector    = "span > a ~ span"

	DefaultSeminarRowSelector     = "#content>table:first-of-type>tbody>tr"
	DefaultSeminarCellSelector    = ">td"
	DefaultSeminarInfoSelector    = ">td:nth-of-type(4)>a:first-of-type"
	DefaultSeminarSegmentSelector = "font"
)

// minContentCells is the smallest content width the download extractor can
// read: name in the second cell, link and time in the third.
const minContentCells = 3

// DownloadConfig configures the Downloads extractor.
type DownloadConfig struct {
	RowSelector     string `json:"rowSelector"`
	ContentSelector string `json:"contentSelector"`
	InsetSelector   string `json:"insetSelector"`
	InfoSelector    string `json:"infoSelector"`
	LinkSelector    string `json:"linkSelector"`
	TimeSelector    string `json:"timeSelector"`

	// MinContentCells is the number of content cells a row needs to be
	// eligible. Must be at least 3.
	MinContentCells int `json:"minContentCells"`

	// LevelOffset is subtracted from the indentation marker count.
	LevelOffset int `json:"levelOffset"`

	// Policy is chosen per run, not read from config files.
	Policy studipsync.Policy `json:"-"`
}

// DefaultDownloadConfig returns the configuration for the Stud.IP 2.x
// folder view.
func DefaultDownloadConfig() DownloadConfig {
	return DownloadConfig{
		RowSelector:     DefaultDownloadRowSelector,
		ContentSelector: DefaultDownloadContentSelector,
		InsetSelector:   DefaultDownloadInsetSelector,
		InfoSelector:    DefaultDownloadInfoSelector,
		LinkSelector:    DefaultDownloadLinkSelector,
		TimeSelector:    DefaultDownloadTimeSelector,
		MinContentCells: minContentCells,
		LevelOffset:     studipsync.DefaultLevelOffset,
		Policy:          studipsync.PolicySkip,
	}
}

// Validate returns an error if the configuration is incomplete.
func (c *DownloadConfig) Validate() error {
	if c.MinContentCells < minContentCells {
		return studipsync.Errorf(studipsync.EINVALID, "minimum content cells must be at least %d, got %d", minContentCells, c.MinContentCells)
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	return validateSelectors([]namedSelector{
		{"row", c.RowSelector},
		{"content", c.ContentSelector},
		{"inset", c.InsetSelector},
		{"info", c.InfoSelector},
		{"link", c.LinkSelector},
		{"time", c.TimeSelector},
	})
}

func (c *DownloadConfig) selectors() []string {
	return []string{c.RowSelector, c.ContentSelector, c.InsetSelector, c.InfoSelector, c.LinkSelector, c.TimeSelector}
}

// SeminarConfig configures the Seminars extractor.
type SeminarConfig struct {
	RowSelector     string `json:"rowSelector"`
	CellSelector    string `json:"cellSelector"`
	InfoSelector    string `json:"infoSelector"`
	SegmentSelector string `json:"segmentSelector"`

	// MinCells is the cell count a row must exceed to be a data row.
	MinCells int `json:"minCells"`

	// Policy is chosen per run, not read from config files.
	Policy studipsync.Policy `json:"-"`
}

// DefaultSeminarConfig returns the configuration for the Stud.IP 2.x
// "my seminars" page.
func DefaultSeminarConfig() SeminarConfig {
	return SeminarConfig{
		RowSelector:     DefaultSeminarRowSelector,
		CellSelector:    DefaultSeminarCellSelector,
		InfoSelector:    DefaultSeminarInfoSelector,
		SegmentSelector: DefaultSeminarSegmentSelector,
		MinCells:        4,
		Policy:          studipsync.PolicySkip,
	}
}

// Validate returns an error if the configuration is incomplete.
func (c *SeminarConfig) Validate() error {
	if c.MinCells < 0 {
		return studipsync.Errorf(studipsync.EINVALID, "minimum cells must not be negative, got %d", c.MinCells)
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	return validateSelectors([]namedSelector{
		{"row", c.RowSelector},
		{"cell", c.CellSelector},
		{"info", c.InfoSelector},
		{"segment", c.SegmentSelector},
	})
}

func (c *SeminarConfig) selectors() []string {
	return []string{c.RowSelector, c.CellSelector, c.InfoSelector, c.SegmentSelector}
}

type namedSelector struct {
	name     string
	selector string
}

func validateSelectors(selectors []namedSelector) error {
	for _, s := range selectors {
		if s.selector == "" {
			return studipsync.Errorf(studipsync.EINVALID, "%s selector required", s.name)
		}
	}
	return nil
}

// compileCheck validates selectors against engines able to check syntax.
func compileCheck(sel studipsync.Selector, selectors []string) error {
	v, ok := sel.(studipsync.SelectorValidator)
	if !ok {
		return nil
	}
	for _, s := range selectors {
		if err := v.Validate(s); err != nil {
			return err
		}
	}
	return nil
}
