package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// ExecutionInfo identifies the run that produced a report.
type ExecutionInfo struct {
	JobName       string    `json:"job_name"`
	ExecutionID   string    `json:"execution_id"`
	ManualTrigger bool      `json:"manual_trigger"`
	CompletedAt   time.Time `json:"completed_at"`
}

// Summary holds dataset-wide statistics over the enriched batch.
type Summary struct {
	TotalRecords   int     `json:"total_records"`
	UniqueGroups   int     `json:"unique_groups"`
	AvgTitleLength float64 `json:"avg_title_length"`
	TotalWordCount int     `json:"total_word_count"`
	MinTitleLength int     `json:"min_title_length"`
	MaxTitleLength int     `json:"max_title_length"`
}

// Breakdown maps user id to its group statistics. It marshals with keys in
// ascending numeric order so the written report stays diffable.
type Breakdown map[int]GroupStats

// MarshalJSON writes the breakdown as an object with sorted integer keys.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	ids := make([]int, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(id)))
		buf.WriteByte(':')
		stats, err := json.Marshal(b[id])
		if err != nil {
			return nil, err
		}
		buf.Write(stats)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AnalysisReport is the structured document persisted alongside the dataset.
type AnalysisReport struct {
	ExecutionInfo ExecutionInfo `json:"execution_info"`
	Summary       Summary       `json:"summary"`
	Breakdown     Breakdown     `json:"breakdown"`
}
