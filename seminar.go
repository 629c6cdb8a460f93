package studipsync

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ParamSeminarSelection is the query parameter selecting a seminar.
const ParamSeminarSelection = "auswahl"

// SeminarEntry is one row of the seminars page.
//
// Name has the form "<id> <type>: <title>", e.g.
// "5793 Vorlesung: Algorithmen und Datenstrukturen". Description starts with
// the period, e.g. "WS 2013/14, Dozent: ...".
type SeminarEntry struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Hash identifies the seminar by its selection parameter, falling back to a
// hash of the name wrapped in "?".
func (e SeminarEntry) Hash() string {
	if u, err := url.Parse(e.URL); err == nil {
		if id := u.Query().Get(ParamSeminarSelection); id != "" {
			return id
		}
	}
	return "?" + strconv.FormatUint(xxhash.Sum64String(e.Name), 16) + "?"
}

// ID returns the course number preceding the first space of the name.
// Returns the whole name if it contains no space.
func (e SeminarEntry) ID() string {
	id, _, _ := strings.Cut(e.Name, " ")
	return id
}

// Type returns the course type between the ID and the first ": ".
// Falls back to ID when the name does not follow the compound form.
func (e SeminarEntry) Type() string {
	_, rest, ok := strings.Cut(e.Name, " ")
	if !ok {
		return e.ID()
	}
	typ, _, ok := strings.Cut(rest, ": ")
	if !ok {
		return e.ID()
	}
	return typ
}

// Title returns the part of the name after the first ": ", or the whole name.
func (e SeminarEntry) Title() string {
	if _, title, ok := strings.Cut(e.Name, ": "); ok {
		return title
	}
	return e.Name
}

// Period returns the description up to the first comma, or the whole
// description.
func (e SeminarEntry) Period() string {
	period, _, _ := strings.Cut(e.Description, ",")
	return period
}

// SeminarResult is the outcome of one seminars pass.
type SeminarResult struct {
	Entries []SeminarEntry
	Report  Report
}

// SeminarExtractor pulls seminar records out of the seminars page.
type SeminarExtractor interface {
	// ExtractSeminars returns the seminars in listing order. Rows whose
	// anchor lacks a name or description are handled per the configured
	// Policy.
	ExtractSeminars(root Node) (*SeminarResult, error)
}
