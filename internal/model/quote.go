package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the currencies quoted in the BCU daily sheet.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
	CurrencyBRL Currency = "BRL"
	CurrencyEUR Currency = "EUR"
)

// Currencies returns the supported currencies in canonical sheet order.
// The set is fixed at build time; the sheet layout maps each one to a
// buy/sell column pair.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyARS, CurrencyBRL, CurrencyEUR}
}

// Quote holds one currency's buy/sell rates for a single day.
// A NullDecimal with Valid=false means the currency was not quoted that
// day; it is never coerced to zero.
type Quote struct {
	Currency Currency
	Buy      decimal.NullDecimal
	Sell     decimal.NullDecimal
}

// DayRecord is one day of quotes: a UTC-midnight date plus exactly one
// Quote per supported currency, in canonical order.
type DayRecord struct {
	Date   time.Time
	Quotes []Quote
}

// NewDayRecord builds a DayRecord, enforcing one quote per supported
// currency in canonical order.
func NewDayRecord(date time.Time, quotes []Quote) (DayRecord, error) {
	want := Currencies()
	if len(quotes) != len(want) {
		return DayRecord{}, fmt.Errorf("expected %d quotes, got %d", len(want), len(quotes))
	}
	for i, c := range want {
		if quotes[i].Currency != c {
			return DayRecord{}, fmt.Errorf("quote %d: expected currency %s, got %s", i, c, quotes[i].Currency)
		}
	}
	return DayRecord{Date: date, Quotes: quotes}, nil
}

// QuoteRow is a DayRecord flattened to one storage row per currency.
type QuoteRow struct {
	Date     time.Time
	Currency Currency
	Buy      decimal.NullDecimal
	Sell     decimal.NullDecimal
}

// Rows expands the record into one QuoteRow per currency, all sharing
// the record's date.
func (r DayRecord) Rows() []QuoteRow {
	rows := make([]QuoteRow, len(r.Quotes))
	for i, q := range r.Quotes {
		rows[i] = QuoteRow{Date: r.Date, Currency: q.Currency, Buy: q.Buy, Sell: q.Sell}
	}
	return rows
}
