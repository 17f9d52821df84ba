package main

import (
	"context"
	"os"
	"time"

	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/pipeline"
	"go-data-processor/internal/store"
	"go-data-processor/pkg/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Errorw("❌ Invalid configuration", "error", err)
		return 1
	}

	runCtx := cfg.RunContext(time.Now().UTC())
	log.Infow("🚀 Data processing job started",
		"name", runCtx.JobName,
		"execution_id", runCtx.ExecutionID,
		"manual_trigger", runCtx.ManualTrigger,
		"start_time", runCtx.StartedAt.Format(time.RFC3339),
	)

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Errorw("❌ Failed to open run registry", "error", err)
		return 1
	}
	if err := store.SaveRun(runCtx); err != nil {
		log.Errorw("❌ Failed to record run", "error", err)
		return 1
	}

	res, err := pipeline.Run(context.Background(), log, cfg, runCtx)
	if err != nil {
		log.Errorw("❌ Job failed", "execution_id", runCtx.ExecutionID, "error", err)
		if dbErr := store.FailRun(runCtx.ExecutionID, err); dbErr != nil {
			log.Warnw("failed to record run failure", "error", dbErr)
		}
		return 1
	}

	if err := store.CompleteRun(runCtx.ExecutionID, store.Completion{
		RecordCount:  res.RecordCount,
		UsedFallback: res.UsedFallback,
		CSVPath:      res.CSVPath,
		JSONPath:     res.JSONPath,
		Duration:     res.Duration,
	}); err != nil {
		log.Warnw("failed to record run completion", "error", err)
	}

	csvSize, csvErr := utils.FileSize(res.CSVPath)
	jsonSize, jsonErr := utils.FileSize(res.JSONPath)
	if csvErr == nil && jsonErr == nil {
		log.Infow("📏 Artifact sizes", "csv_bytes", csvSize, "json_bytes", jsonSize)
	}

	log.Infow("🎉 Job finished successfully",
		"records", res.RecordCount,
		"execution_time", time.Since(runCtx.StartedAt).Round(time.Millisecond),
	)
	return 0
}
