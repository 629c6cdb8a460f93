package mock

import studipsync "github.com/N-Coder/studip-sync"

var _ studipsync.DownloadExtractor = (*DownloadExtractor)(nil)

// DownloadExtractor is a mock implementation of studipsync.DownloadExtractor.
type DownloadExtractor struct {
	ExtractDownloadsFn func(root studipsync.Node) (*studipsync.DownloadResult, error)
}

func (e *DownloadExtractor) ExtractDownloads(root studipsync.Node) (*studipsync.DownloadResult, error) {
	return e.ExtractDownloadsFn(root)
}

var _ studipsync.SeminarExtractor = (*SeminarExtractor)(nil)

// SeminarExtractor is a mock implementation of studipsync.SeminarExtractor.
type SeminarExtractor struct {
	ExtractSeminarsFn func(root studipsync.Node) (*studipsync.SeminarResult, error)
}

func (e *SeminarExtractor) ExtractSeminars(root studipsync.Node) (*studipsync.SeminarResult, error) {
	return e.ExtractSeminarsFn(root)
}
