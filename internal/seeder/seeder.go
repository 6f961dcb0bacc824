package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/extract"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/fetcher"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/store"
)

// Seeder runs the whole pipeline: fetch the workbook, extract the rows
// newer than the store's last known date, and load them.
type Seeder struct {
	Fetcher fetcher.Fetcher
	Store   store.Store
	Cfg     *config.Config
}

// New creates a Seeder.
func New(f fetcher.Fetcher, st store.Store, cfg *config.Config) *Seeder {
	return &Seeder{Fetcher: f, Store: st, Cfg: cfg}
}

// Run executes one seeding pass and returns the number of rows
// inserted. Re-running over the same document inserts nothing, since
// every row is then same-or-before the last known date.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	doc, err := s.Fetcher.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch (%s): %w", s.Fetcher.Name(), err)
	}
	defer doc.Close()

	rows, err := extract.DataRows(doc, s.Cfg.Source.Sheet, s.Cfg.Source.SkipRows, s.Cfg.Layout.Day)
	if err != nil {
		return 0, err
	}

	lastKnown, haveLast, err := s.Store.LastQuoteDate()
	if err != nil {
		return 0, fmt.Errorf("last known date: %w", err)
	}

	records := extract.Aggregate(rows, s.Cfg.Layout, lastKnown, haveLast)
	if len(records) == 0 {
		return 0, nil
	}

	batch := make([]model.DayRecord, 0, len(records))
	for _, rec := range records {
		batch = append(batch, rec)
	}

	count, err := s.Store.InsertDayRecords(batch)
	if err != nil {
		return 0, fmt.Errorf("insert records: %w", err)
	}
	return count, nil
}

// RunOnSchedule runs the seeding pass on the given cron spec until the
// context is cancelled. The source is published daily, so a failed run
// is logged and retried at the next tick rather than aborting.
func (s *Seeder) RunOnSchedule(ctx context.Context, spec string) error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() {
		n, err := s.Run(ctx)
		if err != nil {
			log.Printf("[ERROR] scheduled seed: %v", err)
			return
		}
		log.Printf("[INFO] scheduled seed inserted %d rows", n)
	}); err != nil {
		return fmt.Errorf("register seed task: %w", err)
	}

	c.Start()
	log.Printf("[INFO] scheduler started (%s)", spec)
	<-ctx.Done()
	c.Stop()
	log.Println("[INFO] scheduler stopped")
	return nil
}
