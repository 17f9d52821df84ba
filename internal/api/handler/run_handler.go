package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/pipeline"
	"go-data-processor/internal/store"
)

// TriggerRun starts a manual processing run
// @Summary Trigger a manual run
// @Description Start a new processing run with a fresh execution id and record it in the registry
// @Tags runs
// @Accept json
// @Produce json
// @Success 202 {object} map[string]interface{} "Run accepted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func TriggerRun(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		http.Error(w, "Failed to load configuration", http.StatusInternalServerError)
		return
	}

	// Manual runs get their own id and skip the decorative work phase.
	cfg.ExecutionID = uuid.New().String()
	cfg.ManualTrigger = true
	cfg.SimulateWork = false

	run := cfg.RunContext(time.Now().UTC())
	if err := store.SaveRun(run); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	go func() {
		log := logger.New()
		defer log.Sync()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+time.Minute)
		defer cancel()

		res, err := pipeline.Run(ctx, log, cfg, run)
		if err != nil {
			log.Errorw("❌ Triggered run failed", "execution_id", run.ExecutionID, "error", err)
			store.FailRun(run.ExecutionID, err)
			return
		}
		store.CompleteRun(run.ExecutionID, store.Completion{
			RecordCount:  res.RecordCount,
			UsedFallback: res.UsedFallback,
			CSVPath:      res.CSVPath,
			JSONPath:     res.JSONPath,
			Duration:     res.Duration,
		})
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Run triggered successfully!",
		"executionId": run.ExecutionID,
		"status":      "running",
		"startedAt":   run.StartedAt,
	})
}

// ListRuns retrieves all recorded runs
// @Summary List runs
// @Description Get every run in the registry, newest first
// @Tags runs
// @Produce json
// @Success 200 {array} store.RunRecord "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []store.RunRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun retrieves one run
// @Summary Get run
// @Description Retrieve the registry row of a specific run
// @Tags runs
// @Produce json
// @Param id path string true "Execution ID"
// @Success 200 {object} store.RunRecord "Run details"
// @Failure 400 {object} map[string]interface{} "Missing execution id"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	id := executionID(r.URL.Path)
	if id == "" {
		http.Error(w, "Execution ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch run", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunErrors retrieves the errors of a run
// @Summary Get run errors
// @Description List the errors recorded for a specific run
// @Tags runs
// @Produce json
// @Param id path string true "Execution ID"
// @Success 200 {array} store.RunError "Recorded errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	id := executionID(r.URL.Path)
	if id == "" {
		http.Error(w, "Execution ID is required", http.StatusBadRequest)
		return
	}

	runErrors, err := store.ListRunErrors(id)
	if err != nil {
		http.Error(w, "Failed to fetch run errors", http.StatusInternalServerError)
		return
	}
	if runErrors == nil {
		runErrors = []store.RunError{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runErrors)
}

// GetRunReport serves the persisted analysis document of a run
// @Summary Get run report
// @Description Serve the analysis JSON written by a completed run
// @Tags runs
// @Produce json
// @Param id path string true "Execution ID"
// @Success 200 {object} model.AnalysisReport "Analysis report"
// @Failure 404 {object} map[string]interface{} "Run or report not found"
// @Router /runs/{id}/report [get]
func GetRunReport(w http.ResponseWriter, r *http.Request) {
	id := executionID(r.URL.Path)
	if id == "" {
		http.Error(w, "Execution ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch run", http.StatusInternalServerError)
		return
	}
	if run.JSONPath == "" {
		http.Error(w, "Report not available for this run", http.StatusNotFound)
		return
	}

	data, err := os.ReadFile(run.JSONPath)
	if err != nil {
		http.Error(w, "Report file missing", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// executionID extracts the id segment from /api/v1/runs/{id}[/...].
func executionID(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	// api / v1 / runs / {id} / ...
	if len(segments) < 4 {
		return ""
	}
	return segments[3]
}
