package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-data-processor/internal/config"
	"go-data-processor/internal/model"
)

// Result captures the outcome of one pipeline run.
type Result struct {
	Report       model.AnalysisReport
	CSVPath      string
	JSONPath     string
	RecordCount  int
	UsedFallback bool
	Duration     time.Duration
}

// Run executes the pipeline stages strictly in order: fetch, transform,
// aggregate, report, persist. A data-source failure is absorbed by the mock
// fallback and noted in the result; any other stage error aborts the run and
// propagates to the caller.
func Run(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config, run model.RunContext) (*Result, error) {
	start := time.Now()
	log.Infow("🎯 Starting data processing pipeline", "job", run.JobName, "execution_id", run.ExecutionID)

	// --- FETCH ---
	log.Infow("📡 Fetching posts", "url", cfg.SourceURL, "limit", cfg.FetchLimit)
	fetcher := NewFetcher(cfg.SourceURL, cfg.FetchLimit, cfg.FetchTimeout)
	posts, err := fetcher.Fetch(ctx)
	usedFallback := false
	if err != nil {
		log.Warnw("❌ Fetch failed, generating mock data as fallback", "error", err)
		posts = MockPosts(cfg.FetchLimit)
		usedFallback = true
	}
	log.Infow("✅ Posts ready", "count", len(posts), "fallback", usedFallback)

	// --- TRANSFORM ---
	// One capture timestamp for the whole batch.
	processedAt := time.Now().UTC()
	enriched := Transform(posts, processedAt)

	// --- AGGREGATE ---
	breakdown := Aggregate(enriched)
	log.Infow("👥 User statistics", "groups", len(breakdown))
	for _, id := range GroupIDs(breakdown) {
		s := breakdown[id]
		log.Infof("   User %d: %d posts, avg title length: %.2f, total words: %d",
			id, s.Count, s.AvgTitleLength, s.TotalWordCount)
	}

	// --- REPORT ---
	report := BuildReport(enriched, breakdown, run, time.Now().UTC())
	log.Infow("📊 Data processing statistics",
		"total_records", report.Summary.TotalRecords,
		"unique_groups", report.Summary.UniqueGroups,
		"avg_title_length", report.Summary.AvgTitleLength,
		"total_words", report.Summary.TotalWordCount,
	)

	// --- PERSIST ---
	csvPath, jsonPath, err := Persist(enriched, report, cfg.OutputDir, run.ExecutionID)
	if err != nil {
		return nil, fmt.Errorf("persist stage failed: %w", err)
	}
	log.Infow("💾 Saved processing results", "csv", csvPath, "json", jsonPath)

	if cfg.SimulateWork {
		SimulateWork(ctx, log, cfg.WorkBatches)
	}

	return &Result{
		Report:       report,
		CSVPath:      csvPath,
		JSONPath:     jsonPath,
		RecordCount:  len(enriched),
		UsedFallback: usedFallback,
		Duration:     time.Since(start),
	}, nil
}
