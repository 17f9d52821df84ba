package pipeline_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-data-processor/internal/model"
	"go-data-processor/internal/pipeline"
)

func postsServer(t *testing.T, count int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts := make([]model.Post, 0, count)
		for i := 0; i < count; i++ {
			posts = append(posts, model.Post{ID: i + 1, Title: "t", Body: "b", UserID: i%3 + 1})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(posts)
	}))
}

func TestFetchCapsToLimit(t *testing.T) {
	srv := postsServer(t, 25)
	defer srv.Close()

	f := pipeline.NewFetcher(srv.URL, 10, time.Second)
	got, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 10)
	require.Equal(t, 1, got[0].ID)
	require.Equal(t, 10, got[9].ID)
}

func TestFetchSmallFeed(t *testing.T) {
	srv := postsServer(t, 3)
	defer srv.Close()

	f := pipeline.NewFetcher(srv.URL, 10, time.Second)
	got, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json at all"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := pipeline.NewFetcher(srv.URL, 10, time.Second)
			_, err := f.Fetch(context.Background())
			require.Error(t, err)
		})
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	srv := postsServer(t, 1)
	url := srv.URL
	srv.Close()

	f := pipeline.NewFetcher(url, 10, time.Second)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}

func TestMockPostsDeterminism(t *testing.T) {
	got := pipeline.MockPosts(10)
	require.Len(t, got, 10)

	wantGroups := []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}
	for i, p := range got {
		require.Equal(t, i+1, p.ID)
		require.Equal(t, wantGroups[i], p.UserID)
		require.NotEmpty(t, p.Title)
		require.NotEmpty(t, p.Body)
	}

	require.Equal(t, got, pipeline.MockPosts(10))
}
