package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/model"
)

// ColumnPair maps one currency to its buy and sell column indices.
type ColumnPair struct {
	Buy  int `yaml:"buy"`
	Sell int `yaml:"sell"`
}

// Layout maps semantic fields to zero-based column indices in the
// source sheet. A layout change in the published file is a config
// update, not a code change.
type Layout struct {
	Day        int                           `yaml:"day"`
	Month      int                           `yaml:"month"`
	Year       int                           `yaml:"year"`
	Currencies map[model.Currency]ColumnPair `yaml:"currencies"`
}

// Config holds all application configuration.
type Config struct {
	Source struct {
		URL      string `yaml:"url"`
		Sheet    string `yaml:"sheet"`
		SkipRows int    `yaml:"skip_rows"`
	} `yaml:"source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Layout Layout `yaml:"layout"`
	Proxy  string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Source.SkipRows = -1 // distinguish "unset" from an explicit 0

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BCU_SOURCE_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("BCU_SOURCE_SHEET"); v != "" {
		cfg.Source.Sheet = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}

	// Defaults
	if cfg.Source.SkipRows == -1 {
		cfg.Source.SkipRows = 7
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cotizaciones.db"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 18 * * 1-5"
	}
	if cfg.Layout.Currencies == nil {
		cfg.Layout = DefaultLayout()
	}

	return cfg, nil
}

// DefaultLayout returns the column layout of the published BCU sheet:
// day, month and year first, then one buy/sell pair per currency.
func DefaultLayout() Layout {
	return Layout{
		Day:   0,
		Month: 1,
		Year:  2,
		Currencies: map[model.Currency]ColumnPair{
			model.CurrencyUSD: {Buy: 3, Sell: 4},
			model.CurrencyARS: {Buy: 5, Sell: 6},
			model.CurrencyBRL: {Buy: 7, Sell: 8},
			model.CurrencyEUR: {Buy: 9, Sell: 10},
		},
	}
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.SkipRows < 0 {
		return fmt.Errorf("source.skip_rows must not be negative")
	}
	return c.Layout.Validate()
}

// Validate checks that the layout covers every supported currency and
// assigns each semantic field a distinct column.
func (l Layout) Validate() error {
	seen := map[int]string{
		l.Day:   "day",
		l.Month: "month",
		l.Year:  "year",
	}
	if len(seen) != 3 {
		return fmt.Errorf("layout: day, month and year columns must be distinct")
	}
	for _, cur := range model.Currencies() {
		pair, ok := l.Currencies[cur]
		if !ok {
			return fmt.Errorf("layout: missing columns for currency %s", cur)
		}
		if pair.Buy == pair.Sell {
			return fmt.Errorf("layout: %s buy and sell share column %d", cur, pair.Buy)
		}
		for col, field := range map[int]string{pair.Buy: string(cur) + " buy", pair.Sell: string(cur) + " sell"} {
			if prev, dup := seen[col]; dup {
				return fmt.Errorf("layout: column %d assigned to both %s and %s", col, prev, field)
			}
			seen[col] = field
		}
	}
	return nil
}
