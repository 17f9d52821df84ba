package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go-data-processor/internal/model"
	"go-data-processor/pkg/utils"
)

var csvHeader = []string{"id", "title", "body", "user_id", "processed_at", "title_length", "word_count"}

// Persist writes the enriched dataset as CSV and the analysis report as
// indented JSON under outputDir. File names are scoped by execution id, so a
// rerun with the same id replaces the previous artifacts and distinct ids
// never collide. Both writes go through a temp-and-rename, so a crash
// mid-persist never leaves a partially written file visible.
func Persist(posts []model.EnrichedPost, report model.AnalysisReport, outputDir, executionID string) (string, string, error) {
	if err := utils.EnsureDir(outputDir); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath, jsonPath := utils.OutputPaths(outputDir, executionID)

	if err := writeCSV(csvPath, posts); err != nil {
		return "", "", err
	}
	if err := writeReport(jsonPath, report); err != nil {
		return "", "", err
	}
	return csvPath, jsonPath, nil
}

func writeCSV(path string, posts []model.EnrichedPost) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range posts {
		row := []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Body,
			strconv.Itoa(p.UserID),
			p.ProcessedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(p.TitleLength),
			strconv.Itoa(p.WordCount),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return utils.WriteFileAtomic(path, buf.Bytes())
}

func writeReport(path string, report model.AnalysisReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return utils.WriteFileAtomic(path, append(data, '\n'))
}
