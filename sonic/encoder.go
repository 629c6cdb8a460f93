// Package sonic implements studipsync.Encoder with bytedance/sonic.
package sonic

import (
	studipsync "github.com/N-Coder/studip-sync"
	"github.com/bytedance/sonic"
)

// Ensure Encoder implements studipsync.Encoder at compile time.
var _ studipsync.Encoder = (*Encoder)(nil)

// Encoder renders records as compact JSON arrays. HTML characters are not
// escaped, so URLs keep their literal "&".
type Encoder struct {
	api sonic.API
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{api: sonic.Config{NoNullSliceOrMap: true}.Froze()}
}

// EncodeDownloads encodes entries as a JSON array.
func (e *Encoder) EncodeDownloads(entries []studipsync.DownloadEntry) (string, error) {
	return encode(e.api, entries)
}

// EncodeSeminars encodes entries as a JSON array.
func (e *Encoder) EncodeSeminars(entries []studipsync.SeminarEntry) (string, error) {
	return encode(e.api, entries)
}

func encode[T any](api sonic.API, records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	s, err := api.MarshalToString(records)
	if err != nil {
		return "", studipsync.Errorf(studipsync.EINTERNAL, "failed to encode records: %v", err)
	}
	return s, nil
}
