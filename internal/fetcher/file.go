package fetcher

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FileFetcher reads an already-downloaded workbook from disk. Useful
// for offline seeding and tests.
type FileFetcher struct {
	Path string
}

func NewFileFetcher(path string) *FileFetcher { return &FileFetcher{Path: path} }

func (f *FileFetcher) Name() string { return "file" }

// Fetch opens and decodes the local workbook.
func (f *FileFetcher) Fetch(_ context.Context) (*excelize.File, error) {
	doc, err := excelize.OpenFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", f.Path, err)
	}
	return doc, nil
}
