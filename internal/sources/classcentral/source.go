package classcentral

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"course-aggregator/internal/domain"
	"course-aggregator/internal/httpx"
)

const platform = "Class Central"

// Source reads the fixed aggregator feed. The feed has no search endpoint,
// so the query is ignored and the handler's dedup takes care of overlap with
// the other sources.
type Source struct {
	FeedURL string
	HTTP    *http.Client
}

func New(feedURL string, timeout time.Duration) *Source {
	return &Source{
		FeedURL: feedURL,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *Source) Name() string { return platform }

type feedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

func (s *Source) Search(ctx context.Context, _ string) ([]domain.Course, error) {
	var items []feedItem
	if err := httpx.GetJSON(ctx, s.HTTP, s.FeedURL, nil, &items); err != nil {
		return nil, fmt.Errorf("classcentral: %w", err)
	}

	out := make([]domain.Course, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Course{
			Title:       it.Title,
			Description: it.Description,
			Image:       it.Image,
			URL:         it.URL,
			Platform:    platform,
			Free:        true,
		})
	}
	return out, nil
}
