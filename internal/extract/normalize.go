package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// quotePattern accepts digits optionally followed by a comma or dot
// and more digits. Anything else (blank, dash, text) means the
// currency was not quoted that day.
var quotePattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// parseQuoteCell normalizes one buy/sell cell. Invalid cells are an
// explicit absence, never an error and never zero.
func parseQuoteCell(cell string) decimal.NullDecimal {
	s := strings.TrimSpace(cell)
	if !quotePattern.MatchString(s) {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// normalizeRow converts one raw row plus its resolved date into a
// DayRecord with one quote per supported currency, in canonical order.
func normalizeRow(row Row, date time.Time, layout config.Layout) model.DayRecord {
	quotes := make([]model.Quote, 0, len(model.Currencies()))
	for _, cur := range model.Currencies() {
		pair := layout.Currencies[cur]
		quotes = append(quotes, model.Quote{
			Currency: cur,
			Buy:      parseQuoteCell(row.Cell(pair.Buy)),
			Sell:     parseQuoteCell(row.Cell(pair.Sell)),
		})
	}
	return model.DayRecord{Date: date, Quotes: quotes}
}
