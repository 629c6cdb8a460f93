package studipsync

// Policy decides what happens to a candidate row whose required fields
// cannot be resolved.
type Policy string

// Row fault policies.
const (
	// PolicySkip drops faulty rows silently. Skips are still counted in
	// the Report.
	PolicySkip Policy = "skip"

	// PolicyReport drops faulty rows and returns an EEXTRACT error per row
	// alongside the records that were extracted.
	PolicyReport Policy = "report"
)

// Validate returns an error if the policy is unknown.
func (p Policy) Validate() error {
	switch p {
	case PolicySkip, PolicyReport:
		return nil
	}
	return Errorf(EINVALID, "unknown policy %q", string(p))
}

// SkipReason classifies why a candidate row produced no record.
type SkipReason string

// Skip reasons.
const (
	// SkipIneligible marks rows failing a shape guard (layout rows, header
	// and footer rows). Never an error.
	SkipIneligible SkipReason = "ineligible"

	// SkipUnresolved marks eligible rows where a required sub-selection
	// matched nothing.
	SkipUnresolved SkipReason = "unresolved"
)

// Skip records a candidate row that did not produce a record.
type Skip struct {
	Row    int // index into the candidate rows
	Reason SkipReason
	Field  string // unresolved field, empty for ineligible rows
}

// Report summarizes an extraction pass.
type Report struct {
	Candidates int
	Skips      []Skip
}

// Count returns the number of skips with the given reason.
func (r *Report) Count(reason SkipReason) int {
	n := 0
	for _, s := range r.Skips {
		if s.Reason == reason {
			n++
		}
	}
	return n
}

// StructuralMismatch reports whether the document lacked the expected outer
// containers entirely, i.e. no candidate row was found.
func (r *Report) StructuralMismatch() bool {
	return r.Candidates == 0
}
