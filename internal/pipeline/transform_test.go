package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-data-processor/internal/model"
	"go-data-processor/internal/pipeline"
)

func TestTransformPreservesLengthAndOrder(t *testing.T) {
	posts := []model.Post{
		{ID: 3, Title: "c", Body: "x", UserID: 1},
		{ID: 1, Title: "a", Body: "y", UserID: 2},
		{ID: 2, Title: "b", Body: "z", UserID: 3},
	}

	got := pipeline.Transform(posts, time.Now().UTC())
	require.Len(t, got, len(posts))
	for i, p := range posts {
		require.Equal(t, p, got[i].Post)
	}
}

func TestTransformDerivedFields(t *testing.T) {
	tests := []struct {
		name            string
		title           string
		body            string
		wantTitleLength int
		wantWordCount   int
	}{
		{name: "simple", title: "AB", body: "a b c", wantTitleLength: 2, wantWordCount: 3},
		{name: "empty title", title: "", body: "one two", wantTitleLength: 0, wantWordCount: 2},
		{name: "empty body", title: "hello", body: "", wantTitleLength: 5, wantWordCount: 0},
		{name: "both empty", title: "", body: "", wantTitleLength: 0, wantWordCount: 0},
		{name: "unicode title", title: "héllo wörld", body: "ok", wantTitleLength: 11, wantWordCount: 1},
		{name: "mixed whitespace", title: "x", body: "  a \n b\tc ", wantTitleLength: 1, wantWordCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pipeline.Transform([]model.Post{{ID: 1, Title: tt.title, Body: tt.body, UserID: 1}}, time.Now().UTC())
			require.Len(t, got, 1)
			require.Equal(t, tt.wantTitleLength, got[0].TitleLength)
			require.Equal(t, tt.wantWordCount, got[0].WordCount)
		})
	}
}

func TestTransformSharesBatchTimestamp(t *testing.T) {
	processedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := pipeline.Transform(pipeline.MockPosts(5), processedAt)

	for _, p := range got {
		require.Equal(t, processedAt, p.ProcessedAt)
	}
}

func TestTransformEmptyInput(t *testing.T) {
	got := pipeline.Transform(nil, time.Now().UTC())
	require.Empty(t, got)
}
