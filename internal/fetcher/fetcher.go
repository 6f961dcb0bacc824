package fetcher

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// Fetcher supplies the decoded quotes workbook. The pipeline never
// performs the network fetch itself.
type Fetcher interface {
	Fetch(ctx context.Context) (*excelize.File, error)
	Name() string
}
