package store

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// DryRunStore reads the high-water mark from a real store but logs
// inserts instead of writing them.
type DryRunStore struct {
	Store
}

func NewDryRunStore(inner Store) *DryRunStore { return &DryRunStore{Store: inner} }

// InsertDayRecords logs what would be inserted and returns the count
// without touching the database.
func (s *DryRunStore) InsertDayRecords(records []model.DayRecord) (int, error) {
	count := 0
	for _, rec := range records {
		for _, row := range rec.Rows() {
			log.Printf("[INFO] dry-run: would insert %s %s buy=%s sell=%s",
				row.Date.Format(dateFormat), row.Currency, formatQuote(row.Buy), formatQuote(row.Sell))
			count++
		}
	}
	return count, nil
}

func formatQuote(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.String()
}
