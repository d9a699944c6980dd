package mock

import "github.com/yakumd/yakumd"

var _ yakumd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of yakumd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*yakumd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*yakumd.ExtractResult, error) {
	return e.ExtractFn(html)
}
