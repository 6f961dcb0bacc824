package extract

import (
	"log"
	"time"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// Aggregate folds the data rows into a date-keyed record map. Dates are
// resolved with carry-forward month/year state, quotes are normalized,
// and any record dated same-or-before lastKnown is dropped as already
// persisted (haveLast is false when the store is empty). Multiple rows
// can share a logical date; the last one in document order wins. A row
// whose date cannot be resolved is logged and skipped.
func Aggregate(rows []Row, layout config.Layout, lastKnown time.Time, haveLast bool) map[time.Time]model.DayRecord {
	records := make(map[time.Time]model.DayRecord)
	ctx := &dateContext{}
	skipped, stale := 0, 0

	for _, row := range rows {
		date, err := ctx.resolve(row, layout)
		if err != nil {
			log.Printf("[WARN] skipping row: %v", err)
			skipped++
			continue
		}
		if haveLast && !date.After(lastKnown) {
			stale++
			continue
		}
		records[date] = normalizeRow(row, date, layout)
	}

	log.Printf("[INFO] aggregated %d new day records (%d already persisted, %d unparseable)",
		len(records), stale, skipped)
	return records
}
