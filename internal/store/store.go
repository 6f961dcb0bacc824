package store

import (
	"time"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// Store persists day records and exposes the high-water mark the
// aggregator dedups against. Idempotent re-insertion is achieved by
// that filtering, not by a uniqueness constraint in the store.
type Store interface {
	// LastQuoteDate returns the maximum date already persisted. The
	// second result is false when the store is empty.
	LastQuoteDate() (time.Time, bool, error)

	// InsertDayRecords persists one row per (date, currency) pair and
	// returns the number of rows inserted. Empty input inserts nothing.
	InsertDayRecords(records []model.DayRecord) (int, error)

	Close() error
}
