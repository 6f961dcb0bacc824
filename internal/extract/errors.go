package extract

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument indicates the downloaded workbook does not look
// like the expected BCU sheet (no sheets, or the data region starts
// past the end of the document). It aborts the whole run.
var ErrMalformedDocument = errors.New("malformed document")

// DateParseError reports a row whose date could not be resolved. It is
// recoverable: the row is skipped and the rest of the batch proceeds.
type DateParseError struct {
	Row   int    // zero-based sheet row index
	Field string // "day", "month" or "year"
	Token string
}

func (e *DateParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("row %d: no %s available", e.Row, e.Field)
	}
	return fmt.Sprintf("row %d: cannot parse %s %q", e.Row, e.Field, e.Token)
}
