package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-data-processor/internal/model"
)

// Fetcher retrieves raw posts from a JSON feed.
type Fetcher struct {
	URL    string
	Limit  int
	Client *http.Client
}

// NewFetcher builds a Fetcher with a bounded-timeout HTTP client.
func NewFetcher(url string, limit int, timeout time.Duration) *Fetcher {
	return &Fetcher{
		URL:    url,
		Limit:  limit,
		Client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single GET against the feed and returns at most Limit
// posts. Transport, status and decode failures are returned to the caller,
// which branches to MockPosts instead of retrying.
func (f *Fetcher) Fetch(ctx context.Context) ([]model.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, f.URL)
	}

	var posts []model.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	if len(posts) > f.Limit {
		posts = posts[:f.Limit]
	}
	return posts, nil
}

// MockPosts generates the deterministic fallback dataset: sequential ids
// starting at 1 and user ids cycling over 1,2,3.
func MockPosts(limit int) []model.Post {
	posts := make([]model.Post, 0, limit)
	for i := 0; i < limit; i++ {
		posts = append(posts, model.Post{
			ID:     i + 1,
			Title:  fmt.Sprintf("Sample Data Entry %d", i+1),
			Body:   fmt.Sprintf("This is mock data entry number %d", i+1),
			UserID: (i % 3) + 1,
		})
	}
	return posts
}
