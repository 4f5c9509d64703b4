// Command analyze profiles a speaker's vocabulary from a transcript
// and prints the profile, recommendations, and an optional practice
// session plan as JSON.
//
// Usage:
//
//	analyze -transcript session.txt -speaker Student
//	analyze -transcript - -count 5 < transcript.json
//	analyze -transcript session.txt -student-id <uuid>   # with DATABASE_DSN set
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/storyspark/vocab-engine/internal/adapter/postgres"
	reviewrepo "github.com/storyspark/vocab-engine/internal/adapter/postgres/review"
	wordrepo "github.com/storyspark/vocab-engine/internal/adapter/postgres/word"
	"github.com/storyspark/vocab-engine/internal/app"
	"github.com/storyspark/vocab-engine/internal/config"
	"github.com/storyspark/vocab-engine/internal/difficulty"
	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/nlp"
	"github.com/storyspark/vocab-engine/internal/profiler"
	"github.com/storyspark/vocab-engine/internal/recommend"
	"github.com/storyspark/vocab-engine/internal/refdata"
	"github.com/storyspark/vocab-engine/internal/review"
	"github.com/storyspark/vocab-engine/internal/transcript"
)

type output struct {
	Format          string                    `json:"format"`
	Speaker         string                    `json:"speaker"`
	Profile         *domain.VocabularyProfile `json:"profile"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Session         *domain.SessionPlan       `json:"session,omitempty"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("analyze failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath     = flag.String("config", "", "path to config file (or CONFIG_PATH env)")
		transcriptPath = flag.String("transcript", "", "transcript file, or - for stdin")
		speaker        = flag.String("speaker", "", "speaker to analyze (default: first speaker)")
		count          = flag.Int("count", 0, "number of recommendations (default from config)")
		studentID      = flag.String("student-id", "", "learner uuid for session planning (requires database)")
	)
	flag.Parse()

	if *transcriptPath == "" {
		return fmt.Errorf("-transcript is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg.Log)

	ctx := context.Background()

	raw, err := readTranscript(*transcriptPath)
	if err != nil {
		return err
	}

	tables, err := refdata.Load(cfg.RefData.FrequencyPath, cfg.RefData.GradePath, log)
	if err != nil {
		return err
	}
	model := difficulty.New(tables, difficulty.DefaultParams())

	tokenizer, err := nlp.NewEnglish()
	if err != nil {
		return fmt.Errorf("init tokenizer: %w", err)
	}

	params := profiler.DefaultParams()
	params.MinTextLength = cfg.Analysis.MinTextLength
	prof := profiler.New(tokenizer, model, params)

	parsed := transcript.Parse(raw)
	text := transcript.ExtractSpeakerText(parsed, *speaker)

	profile, err := prof.Analyze(text)
	if err != nil {
		return fmt.Errorf("analyze transcript: %w", err)
	}
	log.Info("profile built",
		slog.String("grade_level", string(profile.GradeLevel)),
		slog.Int("unique_words", profile.UniqueWordCount))

	var pool recommend.WordPool
	var reviews *reviewrepo.Repo
	if cfg.Database.DSN != "" {
		pgPool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pgPool.Close()
		pool = wordrepo.New(pgPool)
		reviews = reviewrepo.New(pgPool)
	}

	if *count <= 0 {
		*count = cfg.Recommend.Count
	}
	engine := recommend.New(pool, recommend.DefaultWeights(), log)
	recs := engine.Recommend(ctx, profile, *count)

	out := output{
		Format:          string(parsed.Format),
		Speaker:         speakerName(parsed, *speaker),
		Profile:         profile,
		Recommendations: recs,
	}

	if *studentID != "" && reviews != nil {
		id, err := uuid.Parse(*studentID)
		if err != nil {
			return fmt.Errorf("parse student id: %w", err)
		}
		states, err := reviews.ListByStudent(ctx, id)
		if err != nil {
			return err
		}
		plan := review.SelectSession(states, cfg.Review.NewPerSession, cfg.Review.ReviewPerSession, time.Now())
		out.Session = &plan
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

func speakerName(parsed transcript.Parsed, requested string) string {
	if requested != "" {
		return requested
	}
	if len(parsed.Speakers) > 0 {
		return parsed.Speakers[0].Name
	}
	return ""
}
