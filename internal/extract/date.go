package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
)

// monthAliases maps every month spelling the BCU sheet uses, lowercased
// and trimmed, to its calendar month. September in particular appears
// as "set", "sep", "setiembre" or "septiembre" depending on the year.
var monthAliases = map[string]time.Month{
	"ene":        time.January,
	"feb":        time.February,
	"mar":        time.March,
	"abr":        time.April,
	"may":        time.May,
	"jun":        time.June,
	"jul":        time.July,
	"ago":        time.August,
	"agosto":     time.August,
	"sep":        time.September,
	"set":        time.September,
	"setiembre":  time.September,
	"septiembre": time.September,
	"oct":        time.October,
	"nov":        time.November,
	"dic":        time.December,
}

// dateContext is the carry-forward state threaded across rows in
// document order. Month and year are printed only on the first row of
// each group; later rows inherit the nearest preceding value.
type dateContext struct {
	month string
	year  string
}

// resolve computes the full date for one row, updating the context with
// any month/year the row states explicitly. Errors are per-row: explicit
// tokens are committed only once they parse, so the context keeps its
// last good values and subsequent rows still resolve.
func (c *dateContext) resolve(row Row, layout config.Layout) (time.Time, error) {
	// The extractor's filter guarantees an integer here.
	day, err := strconv.Atoi(row.Cell(layout.Day))
	if err != nil {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "day", Token: row.Cell(layout.Day)}
	}

	monthTok := c.month
	if tok := row.Cell(layout.Month); tok != "" {
		monthTok = tok
	}
	if monthTok == "" {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "month"}
	}
	month, ok := monthAliases[strings.ToLower(monthTok)]
	if !ok {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "month", Token: monthTok}
	}

	yearTok := c.year
	if tok := row.Cell(layout.Year); tok != "" {
		yearTok = tok
	}
	if yearTok == "" {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "year"}
	}
	year, err := strconv.Atoi(yearTok)
	if err != nil {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "year", Token: yearTok}
	}

	c.month, c.year = monthTok, yearTok

	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 2), so
	// round-trip the components to reject dates that do not exist.
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month || date.Year() != year {
		return time.Time{}, &DateParseError{Row: row.Index, Field: "day", Token: row.Cell(layout.Day)}
	}
	return date, nil
}
