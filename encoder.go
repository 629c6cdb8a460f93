package studipsync

// Encoder renders extracted records as a single JSON array.
type Encoder interface {
	// EncodeDownloads encodes entries in order. An empty or nil slice
	// encodes as "[]".
	EncodeDownloads(entries []DownloadEntry) (string, error)

	// EncodeSeminars encodes entries in order. An empty or nil slice
	// encodes as "[]".
	EncodeSeminars(entries []SeminarEntry) (string, error)
}
