package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gmanriqueUy/cotizaciones-bcu/internal/config"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/fetcher"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/seeder"
	"github.com/gmanriqueUy/cotizaciones-bcu/internal/store"
)

func main() {
	cfgPath := flag.String("config", defaultConfigPath(), "path to YAML config")
	filePath := flag.String("file", "", "seed from a local workbook instead of downloading")
	dryRun := flag.Bool("dry-run", false, "log what would be inserted without writing")
	daemon := flag.Bool("daemon", false, "keep running and seed on the configured cron schedule")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *filePath == "" {
		// A local file needs no source URL; everything else does.
		if err := cfg.Validate(); err != nil {
			log.Fatalf("[FATAL] config validation: %v", err)
		}
	} else if err := cfg.Layout.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var src fetcher.Fetcher
	if *filePath != "" {
		src = fetcher.NewFileFetcher(*filePath)
	} else {
		src = fetcher.NewHTTPFetcher(cfg.Source.URL, cfg.Proxy)
	}
	log.Printf("[INFO] quote source: %s", src.Name())

	st, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] open store: %v", err)
	}
	defer st.Close()

	var dst store.Store = st
	if *dryRun {
		dst = store.NewDryRunStore(st)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := seeder.New(src, dst, cfg)

	if *daemon {
		if err := s.RunOnSchedule(ctx, cfg.Schedule.DailyCron); err != nil {
			log.Fatalf("[FATAL] scheduler: %v", err)
		}
		return
	}

	count, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("[FATAL] seed: %v", err)
	}
	fmt.Printf("Seeded with %d rows\n", count)
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}
