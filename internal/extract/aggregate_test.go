package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "", "", "70,7", "71,2"}},
	}

	records := Aggregate(rows, layout, day(2020, time.July, 31), true)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first, ok := records[day(2020, time.August, 1)]
	if !ok {
		t.Fatal("missing record for 2020-08-01")
	}
	if !first.Quotes[0].Buy.Decimal.Equal(decimal.RequireFromString("70.5")) {
		t.Errorf("unexpected USD buy for Aug 1: %s", first.Quotes[0].Buy.Decimal)
	}

	second, ok := records[day(2020, time.August, 2)]
	if !ok {
		t.Fatal("missing record for 2020-08-02")
	}
	if !second.Quotes[0].Sell.Decimal.Equal(decimal.RequireFromString("71.2")) {
		t.Errorf("unexpected USD sell for Aug 2: %s", second.Quotes[0].Sell.Decimal)
	}
}

func TestAggregate_DropsSameOrBefore(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "", "", "70,7", "71,2"}},
		{Index: 9, Cells: []string{"3", "", "", "70,9", "71,4"}},
	}

	// A date equal to the last known one counts as already persisted.
	records := Aggregate(rows, layout, day(2020, time.August, 2), true)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if _, ok := records[day(2020, time.August, 3)]; !ok {
		t.Error("expected only the Aug 3 record to survive")
	}
}

func TestAggregate_EmptyStoreKeepsEverything(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "", "", "70,7", "71,2"}},
	}

	records := Aggregate(rows, layout, time.Time{}, false)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestAggregate_LastRowWinsOnSameDate(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"1", "", "", "70,8", "71,3"}},
	}

	records := Aggregate(rows, layout, time.Time{}, false)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[day(2020, time.August, 1)]
	if !rec.Quotes[0].Buy.Decimal.Equal(decimal.RequireFromString("70.8")) {
		t.Errorf("expected the later row to win, got USD buy %s", rec.Quotes[0].Buy.Decimal)
	}
}

func TestAggregate_IdempotentReseed(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "", "", "70,7", "71,2"}},
	}

	first := Aggregate(rows, layout, time.Time{}, false)
	var max time.Time
	for date := range first {
		if date.After(max) {
			max = date
		}
	}

	second := Aggregate(rows, layout, max, true)
	if len(second) != 0 {
		t.Fatalf("expected empty result on reseed, got %d records", len(second))
	}
}

func TestAggregate_SkipsUnresolvableRows(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "augusto2020", "", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "ago", "2020", "70,7", "71,2"}},
	}

	records := Aggregate(rows, layout, time.Time{}, false)
	if len(records) != 1 {
		t.Fatalf("expected the bad row to be skipped, got %d records", len(records))
	}
	if _, ok := records[day(2020, time.August, 2)]; !ok {
		t.Error("expected the Aug 2 record to survive")
	}
}

func TestAggregate_BadMonthRowOnlyDropsItself(t *testing.T) {
	layout := config.DefaultLayout()
	rows := []Row{
		{Index: 7, Cells: []string{"1", "ago", "2020", "70,5", "71,0"}},
		{Index: 8, Cells: []string{"2", "augusto2020", "", "70,7", "71,2"}},
		{Index: 9, Cells: []string{"3", "", "", "70,9", "71,4"}},
	}

	records := Aggregate(rows, layout, time.Time{}, false)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if _, ok := records[day(2020, time.August, 1)]; !ok {
		t.Error("missing record for 2020-08-01")
	}
	if _, ok := records[day(2020, time.August, 3)]; !ok {
		t.Error("expected the blank-month row after the bad token to inherit August")
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	records := Aggregate(nil, config.DefaultLayout(), time.Time{}, false)
	if len(records) != 0 {
		t.Fatalf("expected empty mapping, got %d records", len(records))
	}
}
