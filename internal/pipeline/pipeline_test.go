package pipeline_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-data-processor/internal/config"
	"go-data-processor/internal/model"
	"go-data-processor/internal/pipeline"
)

func testConfig(sourceURL, outputDir string) *config.Config {
	return &config.Config{
		JobName:      "pipeline-test",
		ExecutionID:  "exec-1",
		SourceURL:    sourceURL,
		FetchTimeout: time.Second,
		FetchLimit:   10,
		OutputDir:    outputDir,
		SimulateWork: false,
	}
}

func TestRunHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(examplePosts())
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL, t.TempDir())
	run := cfg.RunContext(time.Now().UTC())

	res, err := pipeline.Run(context.Background(), zap.NewNop().Sugar(), cfg, run)
	require.NoError(t, err)
	require.False(t, res.UsedFallback)
	require.Equal(t, 3, res.RecordCount)

	require.Equal(t, model.Summary{
		TotalRecords:   3,
		UniqueGroups:   2,
		AvgTitleLength: 2.0,
		TotalWordCount: 6,
		MinTitleLength: 1,
		MaxTitleLength: 3,
	}, res.Report.Summary)

	for _, path := range []string{res.CSVPath, res.JSONPath} {
		_, err := os.Stat(path)
		require.NoError(t, err)
	}
}

func TestRunFallsBackOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := testConfig(url, t.TempDir())
	run := cfg.RunContext(time.Now().UTC())

	res, err := pipeline.Run(context.Background(), zap.NewNop().Sugar(), cfg, run)
	require.NoError(t, err)
	require.True(t, res.UsedFallback)
	require.Equal(t, 10, res.RecordCount)
	require.Equal(t, 3, res.Report.Summary.UniqueGroups)
}

func TestRunFailsOnUnwritableOutputDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(examplePosts())
	}))
	defer srv.Close()

	// A regular file where the output directory should be.
	blocker := t.TempDir() + "/blocker"
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := testConfig(srv.URL, blocker)
	run := cfg.RunContext(time.Now().UTC())

	_, err := pipeline.Run(context.Background(), zap.NewNop().Sugar(), cfg, run)
	require.Error(t, err)
}
