package udemy

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

const platform = "Udemy"

// Source queries a RapidAPI-hosted Udemy search API. It is the only source
// that needs credentials, so the aggregator only wires it in when a key is
// configured.
type Source struct {
	APIKey  string
	APIHost string
	HTTP    *http.Client
}

func New(apiKey, apiHost string, timeout time.Duration) *Source {
	return &Source{
		APIKey:  apiKey,
		APIHost: apiHost,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *Source) Name() string { return platform }

/* -------- Response -------- */

type searchResponse struct {
	Courses []courseItem `json:"courses"`
}

type courseItem struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Coupon      string `json:"coupon"`
	Discount    string `json:"discount"`
	Images      struct {
		Image480x270 string `json:"image_480x270"`
		Image240x135 string `json:"image_240x135"`
	} `json:"images"`
}

/* -------- API -------- */

func (s *Source) Search(ctx context.Context, query string) ([]domain.Course, error) {
	u := &url.URL{
		Scheme: "https",
		Host:   s.APIHost,
		Path:   "/search",
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("X-RapidAPI-Key", s.APIKey)
	header.Set("X-RapidAPI-Host", s.APIHost)

	var resp searchResponse
	if err := httpx.GetJSON(ctx, s.HTTP, u.String(), header, &resp); err != nil {
		return nil, fmt.Errorf("udemy: %w", err)
	}

	out := make([]domain.Course, 0, len(resp.Courses))
	for _, c := range resp.Courses {
		out = append(out, domain.Course{
			Title:       firstNonEmpty(c.Title, c.Name),
			Description: firstNonEmpty(c.Headline, c.Description),
			Image:       firstNonEmpty(c.Images.Image480x270, c.Images.Image240x135),
			URL:         absolutizeURL("https://www.udemy.com", c.URL),
			Platform:    platform,
			// paid catalog: only a coupon/discount makes a course free
			Free: c.Coupon != "" || c.Discount != "",
		})
	}
	return out, nil
}

func absolutizeURL(host, in string) string {
	in = strings.TrimSpace(in)
	if in == "" {
		return ""
	}
	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") {
		return in
	}
	if strings.HasPrefix(in, "/") {
		return host + in
	}
	return host + "/" + in
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
