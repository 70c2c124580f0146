package domain

import "github.com/google/uuid"

// Course is the canonical representation of one piece of educational content
// inside this service. Every source adapter maps its own response shape into
// this model, and the handler serializes it as-is.
type Course struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	Platform    string `json:"platform"` // "Coursera", "Udemy", etc.
	Free        bool   `json:"free"`
}

// DedupKey decides whether two courses are the same entry when merging:
// URL wins, then Title. A course with neither gets a fresh random key on
// every call, so anonymous records are never deduplicated against each
// other even when their content is identical. That mirrors how the feed
// merge has always behaved; callers must compute the key once per record.
func (c Course) DedupKey() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Title != "" {
		return c.Title
	}
	return uuid.NewString()
}

// IsZero reports whether the record carries no data at all. The merge drops
// these instead of serializing empty objects.
func (c Course) IsZero() bool {
	return c == Course{}
}
