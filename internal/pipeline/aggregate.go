package pipeline

import (
	"math"
	"sort"

	"go-data-processor/internal/model"
)

// groupAccumulator collects running totals for a single user id.
type groupAccumulator struct {
	count          int
	titleLengthSum int
	wordCountSum   int
}

// Aggregate groups enriched posts by user id and computes per-group
// statistics in one pass over the batch. Averages round via Round2.
func Aggregate(posts []model.EnrichedPost) model.Breakdown {
	accs := make(map[int]*groupAccumulator)
	for _, p := range posts {
		acc, ok := accs[p.UserID]
		if !ok {
			acc = &groupAccumulator{}
			accs[p.UserID] = acc
		}
		acc.count++
		acc.titleLengthSum += p.TitleLength
		acc.wordCountSum += p.WordCount
	}

	stats := make(model.Breakdown, len(accs))
	for id, acc := range accs {
		stats[id] = model.GroupStats{
			Count:          acc.count,
			AvgTitleLength: Round2(float64(acc.titleLengthSum) / float64(acc.count)),
			TotalWordCount: acc.wordCountSum,
		}
	}
	return stats
}

// GroupIDs returns the breakdown keys in ascending order so enumeration for
// logging and serialization is deterministic.
func GroupIDs(stats model.Breakdown) []int {
	ids := make([]int, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
