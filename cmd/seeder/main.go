// Command seeder fills the word catalog from a JSON word list. Each
// entry is scored by the difficulty model before being written, so the
// catalog always carries scores consistent with the current reference
// tables.
//
// Usage:
//
//	seeder -words data/words.json
//	seeder -words data/words.json -dry-run
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/storyspark/vocab-engine/internal/adapter/postgres"
	wordrepo "github.com/storyspark/vocab-engine/internal/adapter/postgres/word"
	"github.com/storyspark/vocab-engine/internal/app"
	"github.com/storyspark/vocab-engine/internal/config"
	"github.com/storyspark/vocab-engine/internal/difficulty"
	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/refdata"
)

// seedEntry is the input file format. Difficulty and frequency are
// computed, not read.
type seedEntry struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to config file (or CONFIG_PATH env)")
		wordsPath  = flag.String("words", "", "path to the JSON word list")
		dryRun     = flag.Bool("dry-run", false, "score and validate without writing")
	)
	flag.Parse()

	if *wordsPath == "" {
		return fmt.Errorf("-words is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg.Log)

	entries, err := readEntries(*wordsPath)
	if err != nil {
		return err
	}
	log.Info("word list loaded", slog.String("path", *wordsPath), slog.Int("entries", len(entries)))

	tables, err := refdata.Load(cfg.RefData.FrequencyPath, cfg.RefData.GradePath, log)
	if err != nil {
		return err
	}
	model := difficulty.New(tables, difficulty.DefaultParams())

	words := make([]domain.CatalogWord, 0, len(entries))
	for _, e := range entries {
		pos := domain.PartOfSpeech(e.PartOfSpeech)
		if !pos.IsValid() {
			log.Warn("skipping entry with unknown part of speech",
				slog.String("word", e.Word), slog.String("part_of_speech", e.PartOfSpeech))
			continue
		}
		scored := model.Score(e.Word)
		words = append(words, domain.CatalogWord{
			Word:         scored.Word,
			Difficulty:   scored.Score,
			PartOfSpeech: pos,
			Definition:   e.Definition,
			Example:      e.Example,
			Frequency:    model.Frequency(e.Word),
		})
	}

	if *dryRun {
		for _, w := range words {
			if err := w.Validate(); err != nil {
				return err
			}
		}
		log.Info("dry run complete", slog.Int("words", len(words)))
		return nil
	}

	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := wordrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	start := time.Now()
	var written int
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		written, txErr = repo.BulkUpsert(ctx, words)
		return txErr
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Info("catalog seeded",
		slog.Int("words", written),
		slog.Duration("took", time.Since(start)))
	return nil
}

func readEntries(path string) ([]seedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return entries, nil
}
