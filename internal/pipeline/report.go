package pipeline

import (
	"time"

	"go-data-processor/internal/model"
)

// BuildReport assembles run metadata, the dataset-wide summary and the
// per-group breakdown into one report. Summary figures are computed straight
// from the enriched records rather than re-derived from the breakdown, so
// per-group rounding never skews them.
func BuildReport(posts []model.EnrichedPost, breakdown model.Breakdown, run model.RunContext, completedAt time.Time) model.AnalysisReport {
	summary := model.Summary{
		TotalRecords: len(posts),
		UniqueGroups: len(breakdown),
	}

	if len(posts) > 0 {
		titleLengthSum := 0
		summary.MinTitleLength = posts[0].TitleLength
		summary.MaxTitleLength = posts[0].TitleLength

		for _, p := range posts {
			titleLengthSum += p.TitleLength
			summary.TotalWordCount += p.WordCount
			if p.TitleLength < summary.MinTitleLength {
				summary.MinTitleLength = p.TitleLength
			}
			if p.TitleLength > summary.MaxTitleLength {
				summary.MaxTitleLength = p.TitleLength
			}
		}
		summary.AvgTitleLength = Round2(float64(titleLengthSum) / float64(len(posts)))
	}

	return model.AnalysisReport{
		ExecutionInfo: model.ExecutionInfo{
			JobName:       run.JobName,
			ExecutionID:   run.ExecutionID,
			ManualTrigger: run.ManualTrigger,
			CompletedAt:   completedAt,
		},
		Summary:   summary,
		Breakdown: breakdown,
	}
}
