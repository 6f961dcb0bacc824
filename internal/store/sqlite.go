package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// dateFormat is how quote dates are stored; ISO order keeps MAX(date)
// meaningful for the high-water mark query.
const dateFormat = "2006-01-02"

// SQLiteStore persists quotes to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so readers are not blocked while the seeder writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			date     TEXT NOT NULL,
			currency TEXT NOT NULL,
			buy      TEXT,
			sell     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_date ON quotes(date)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// LastQuoteDate returns the maximum persisted date, or false if the
// quotes table is empty.
func (s *SQLiteStore) LastQuoteDate() (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var max sql.NullString
	if err := s.db.QueryRow(`SELECT MAX(date) FROM quotes`).Scan(&max); err != nil {
		return time.Time{}, false, fmt.Errorf("query last date: %w", err)
	}
	if !max.Valid {
		return time.Time{}, false, nil
	}

	date, err := time.ParseInLocation(dateFormat, max.String, time.UTC)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse stored date %q: %w", max.String, err)
	}
	return date, true, nil
}

// InsertDayRecords inserts one row per (date, currency) pair inside a
// single transaction. Absent buy/sell values become NULL, never zero.
func (s *SQLiteStore) InsertDayRecords(records []model.DayRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO quotes (date, currency, buy, sell) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, rec := range records {
		for _, row := range rec.Rows() {
			if _, err := stmt.Exec(row.Date.Format(dateFormat), string(row.Currency), row.Buy, row.Sell); err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("insert %s %s: %w", row.Date.Format(dateFormat), row.Currency, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
