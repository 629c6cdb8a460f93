package studipsync

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/encoding/charmap"
)

// DefaultLevelOffset is the number of indentation markers present in every
// row of the downloads page regardless of nesting depth. It was fixed
// empirically against the Stud.IP 2.x folder view and is not derivable from
// the markup.
const DefaultLevelOffset = 2

// LastModifiedLayout is the portal's timestamp format, e.g. "26.08.2013 - 20:38".
const LastModifiedLayout = "02.01.2006 - 15:04"

// Query parameters carried by portal download links.
const (
	ParamNewestOnly = "newestOnly"
	ParamFileID     = "file_id"
	ParamFolderID   = "folder_id"
	ParamFileName   = "file_name"
)

// fileNameReplacer transliterates characters the portal rejects in file names.
var fileNameReplacer = strings.NewReplacer(
	" ", "_",
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "ss",
	":", "", "(", "", ")", "", "/", "", "\\", "",
)

// DownloadEntry is one file or folder row of the downloads page.
type DownloadEntry struct {
	DisplayName  string `json:"displayName"`
	URL          string `json:"url"`
	LastModified string `json:"lastModified"`
	Level        int    `json:"level"`
}

// Hash identifies the entry by its file or folder ID. Entries whose URL
// carries neither fall back to a hash of the URL prefixed with "?".
func (e DownloadEntry) Hash() string {
	q := e.query()
	if id := q.Get(ParamFileID); id != "" {
		return id
	}
	if id := q.Get(ParamFolderID); id != "" {
		return id
	}
	return "?" + strconv.FormatUint(xxhash.Sum64String(e.URL), 16)
}

// IsFolder reports whether the entry links to a folder rather than a file.
func (e DownloadEntry) IsFolder() bool {
	return e.query().Has(ParamFolderID)
}

// Changed reports whether the portal marked the entry as changed since the
// last visit.
func (e DownloadEntry) Changed() bool {
	changed, _ := strconv.ParseBool(e.query().Get(ParamNewestOnly))
	return changed
}

// FileName returns a file-system friendly name for the entry. The file_name
// query parameter wins over the display name. The portal encodes that
// parameter as ISO-8859-1.
func (e DownloadEntry) FileName() string {
	name := e.query().Get(ParamFileName)
	if name != "" && !utf8.ValidString(name) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().String(name); err == nil {
			name = decoded
		}
	}
	if name == "" {
		name = e.DisplayName
	}
	return fileNameReplacer.Replace(name)
}

// ModTime parses LastModified in loc. A nil loc means UTC.
func (e DownloadEntry) ModTime(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(LastModifiedLayout, strings.TrimSpace(e.LastModified), loc)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "invalid last modified time %q", e.LastModified)
	}
	return t, nil
}

// FullURL returns the link to the complete file or folder archive.
func (e DownloadEntry) FullURL() (string, error) {
	return e.withNewestOnly(false)
}

// DiffURL returns the link to the files changed since the last visit.
func (e DownloadEntry) DiffURL() (string, error) {
	return e.withNewestOnly(true)
}

func (e DownloadEntry) withNewestOnly(v bool) (string, error) {
	u, err := url.Parse(e.URL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid download URL %q: %v", e.URL, err)
	}
	q := u.Query()
	q.Set(ParamNewestOnly, strconv.FormatBool(v))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (e DownloadEntry) query() url.Values {
	u, err := url.Parse(e.URL)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

// DownloadResult is the outcome of one downloads pass.
type DownloadResult struct {
	Entries []DownloadEntry
	Report  Report
}

// DownloadExtractor flattens the downloads page into entries annotated with
// nesting depth.
type DownloadExtractor interface {
	// ExtractDownloads returns the entries in document order. A document
	// without the expected containers yields no entries and no error.
	// Under PolicyReport the error joins one EEXTRACT error per faulty row
	// and the result still holds every healthy entry.
	ExtractDownloads(root Node) (*DownloadResult, error)
}
