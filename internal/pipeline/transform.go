package pipeline

import (
	"strings"
	"time"

	"go-data-processor/internal/model"
)

// Transform enriches raw posts with derived fields. It is a pure mapping:
// order-preserving, one output per input. An absent title or body is treated
// as the empty string, so a loosely shaped record yields zero-valued derived
// fields instead of failing the batch.
func Transform(posts []model.Post, processedAt time.Time) []model.EnrichedPost {
	enriched := make([]model.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		enriched = append(enriched, model.EnrichedPost{
			Post:        p,
			ProcessedAt: processedAt,
			TitleLength: len([]rune(p.Title)),
			WordCount:   len(strings.Fields(p.Body)),
		})
	}
	return enriched
}
