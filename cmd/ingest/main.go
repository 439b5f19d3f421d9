package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Revanth0912/Job-Select-AI/internal/catalog"
	"github.com/Revanth0912/Job-Select-AI/internal/config"
	"github.com/Revanth0912/Job-Select-AI/internal/matcher"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
	"github.com/Revanth0912/Job-Select-AI/internal/services"
)

// Batch ingestion: scans the configured resume folder and runs every
// txt/pdf/docx file through the matching pipeline, sequentially.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	// Missing critical configuration fails fast here; only the company
	// display name has a fallback.
	if cfg.Ingest.JobCSV == "" {
		log.Fatal().Msg("JOB_CSV is not configured")
	}
	if _, err := os.Stat(cfg.Ingest.JobCSV); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Ingest.JobCSV).Msg("job CSV not found")
	}
	if _, err := os.Stat(cfg.Ingest.ResumeFolder); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Ingest.ResumeFolder).Msg("resume folder not found")
	}

	titles, err := catalog.LoadTitles(cfg.Ingest.JobCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load job titles")
	}

	cat, unknown := catalog.Default().Filter(titles)
	for _, title := range unknown {
		log.Warn().Str("job_title", title).Msg("job title not in catalog, ignoring")
	}
	if cat.Len() == 0 {
		log.Fatal().Msg("no catalog roles left after applying job CSV")
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	pipeline := services.NewPipeline(
		repositories.NewCandidateRepository(db),
		repositories.NewMatchRepository(db),
		matcher.New(cat),
		cfg.Ingest.MinMatchScore,
	)

	outcomes, err := pipeline.ProcessDirectory(cfg.Ingest.ResumeFolder)
	if err != nil {
		log.Fatal().Err(err).Msg("batch ingestion failed")
	}

	processed, skipped, failed := 0, 0, 0
	for _, outcome := range outcomes {
		switch {
		case outcome.Skipped:
			skipped++
		case outcome.Err != nil:
			failed++
		default:
			processed++
		}
	}

	log.Info().
		Int("processed", processed).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("batch ingestion complete")
}
