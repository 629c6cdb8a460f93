// Package studipsync extracts structured records from the downloads and
// seminars pages of a legacy Stud.IP portal.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sonic/, slog/).
package studipsync
