package model

import "time"

// Post is a single raw record from the source feed.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// EnrichedPost is a Post plus the fields derived during processing.
// ProcessedAt is captured once per batch, not per record.
type EnrichedPost struct {
	Post
	ProcessedAt time.Time `json:"processed_at"`
	TitleLength int       `json:"title_length"`
	WordCount   int       `json:"word_count"`
}

// GroupStats summarises all posts sharing a user id.
type GroupStats struct {
	Count          int     `json:"count"`
	AvgTitleLength float64 `json:"avg_title_length"`
	TotalWordCount int     `json:"total_word_count"`
}

// RunContext is the immutable metadata of one job execution. It is built
// once at startup and passed into each stage; no stage reads ambient state.
type RunContext struct {
	JobName       string
	ExecutionID   string
	ManualTrigger bool
	StartedAt     time.Time
}
