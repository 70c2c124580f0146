package geeksforgeeks

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"course-aggregator/internal/domain"
	"course-aggregator/internal/httpx"
)

const platform = "GeeksforGeeks"

// maxItems caps how many feed entries one request contributes.
const maxItems = 20

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

/* -------- Feed -------- */

type rssFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

// Search fetches the article feed and keeps items matching the query
// (case-insensitive, title or description) when one is given. Fields come
// with embedded HTML; stripHTML flattens them to plain text before matching.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Course, error) {
	raw, err := httpx.GetText(ctx, s.HTTP, s.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geeksforgeeks: %w", err)
	}

	var feed rssFeed
	if err := xml.Unmarshal([]byte(raw), &feed); err != nil {
		return nil, fmt.Errorf("geeksforgeeks: parse feed: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Course, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		title := stripHTML(it.Title)
		link := stripHTML(it.Link)
		desc := stripHTML(it.Description)

		if needle != "" &&
			!strings.Contains(strings.ToLower(title), needle) &&
			!strings.Contains(strings.ToLower(desc), needle) {
			continue
		}

		out = append(out, domain.Course{
			Title:       title,
			Description: desc,
			URL:         link,
			Platform:    platform,
			Free:        true,
		})

		if len(out) >= maxItems {
			break
		}
	}
	return out, nil
}
