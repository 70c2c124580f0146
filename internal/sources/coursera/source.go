package coursera

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"course-aggregator/internal/domain"
	"course-aggregator/internal/httpx"
)

const platform = "Coursera"

type Source struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Source {
	return &Source{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: timeout, // por-request
		},
	}
}

func (s *Source) Name() string { return platform }

/* -------- Response -------- */

type searchResponse struct {
	Elements []courseElement `json:"elements"`
}

type courseElement struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tagline     string `json:"tagline"`
	PhotoURL    string `json:"photoUrl"`
	Slug        string `json:"slug"`
}

/* -------- API -------- */

// Search hits the public catalog search endpoint. Everything Coursera
// returns from this endpoint is auditable for free, so records are marked
// free across the board.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Course, error) {
	u, err := url.Parse(s.BaseURL + "/api/courses.v1")
	if err != nil {
		return nil, fmt.Errorf("coursera: invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("q", "search")
	q.Set("query", query)
	q.Set("fields", "name,description,tagline,photoUrl,slug")
	u.RawQuery = q.Encode()

	var resp searchResponse
	if err := httpx.GetJSON(ctx, s.HTTP, u.String(), nil, &resp); err != nil {
		return nil, fmt.Errorf("coursera: %w", err)
	}

	out := make([]domain.Course, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		out = append(out, domain.Course{
			Title:       firstNonEmpty(el.Name, el.Title),
			Description: firstNonEmpty(el.Description, el.Tagline),
			Image:       el.PhotoURL,
			URL:         courseURL(el.Slug),
			Platform:    platform,
			Free:        true,
		})
	}
	return out, nil
}

func courseURL(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	return "https://www.coursera.org/learn/" + slug
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
