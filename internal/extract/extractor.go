package extract

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one raw data row from the sheet: its cells at fixed column
// offsets plus its zero-based index for diagnostics.
type Row struct {
	Index int
	Cells []string
}

// Cell returns the trimmed cell at col, or "" when the row is shorter.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[col])
}

var dayPattern = regexp.MustCompile(`^[0-9]+$`)

// DataRows returns the rows of the sheet that carry actual quotes,
// skipping the fixed header region. A row is data iff its day column
// holds a bare integer; that single filter discards header, footer and
// blank rows without knowing their exact shape. An empty sheet name
// selects the first sheet in the workbook.
func DataRows(f *excelize.File, sheet string, skip, dayCol int) ([]Row, error) {
	if len(f.GetSheetList()) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedDocument)
	}
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrMalformedDocument, sheet, err)
	}
	if skip < 0 || skip >= len(cells) {
		return nil, fmt.Errorf("%w: data offset %d out of range (%d rows)", ErrMalformedDocument, skip, len(cells))
	}

	var rows []Row
	for i := skip; i < len(cells); i++ {
		row := Row{Index: i, Cells: cells[i]}
		if !dayPattern.MatchString(row.Cell(dayCol)) {
			continue
		}
		rows = append(rows, row)
	}

	log.Printf("[INFO] extracted %d data rows from sheet %q", len(rows), sheet)
	return rows, nil
}
