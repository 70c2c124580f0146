package aggregator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course-aggregator/internal/config"
)

// end-to-end over the real adapters against local servers

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func testConfig(coursera, classcentral, fcc, gfg string) config.Config {
	return config.Config{
		CourseraBaseURL:     coursera,
		ClassCentralFeedURL: classcentral,
		FCCCurriculumURL:    fcc,
		GFGFeedURL:          gfg,
		HTTPTimeout:         5 * time.Second,
	}
}

func TestCurriculumUnreachableStillYieldsOneRecord(t *testing.T) {
	coursera := jsonServer(t, `{"elements": []}`)
	defer coursera.Close()
	feed := jsonServer(t, `[]`)
	defer feed.Close()
	gfg := jsonServer(t, `<rss version="2.0"><channel></channel></rss>`)
	defer gfg.Close()

	// unreachable curriculum endpoint
	fcc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	fcc.Close()

	a := New(testConfig(coursera.URL, feed.URL, fcc.URL, gfg.URL))

	merged := a.Search(context.Background(), "")

	var fccCount int
	for _, c := range merged {
		if c.Platform == "freeCodeCamp" {
			fccCount++
			if c.Title != "freeCodeCamp Curriculum" {
				t.Errorf("Expected fixed fallback title, got %q", c.Title)
			}
		}
	}
	if fccCount != 1 {
		t.Errorf("Expected exactly 1 freeCodeCamp record, got %d", fccCount)
	}
}

func TestCatalogDuplicateURLsCollapse(t *testing.T) {
	// two catalog items with the same slug derive the same URL
	coursera := jsonServer(t, `{
		"elements": [
			{"name": "Go I", "slug": "go-course"},
			{"name": "Go II", "slug": "go-course"}
		]
	}`)
	defer coursera.Close()
	feed := jsonServer(t, `[]`)
	defer feed.Close()
	fcc := jsonServer(t, `{"title": "Curriculum"}`)
	defer fcc.Close()
	gfg := jsonServer(t, `<rss version="2.0"><channel></channel></rss>`)
	defer gfg.Close()

	a := New(testConfig(coursera.URL, feed.URL, fcc.URL, gfg.URL))

	merged := a.Search(context.Background(), "go")

	var courseraCount int
	for _, c := range merged {
		if c.Platform == "Coursera" {
			courseraCount++
			if c.Title != "Go I" {
				t.Errorf("Expected first duplicate to win, got %q", c.Title)
			}
		}
	}
	if courseraCount != 1 {
		t.Errorf("Expected exactly 1 Coursera record after dedup, got %d", courseraCount)
	}
}

func TestNoUdemyRecordsWithoutKey(t *testing.T) {
	coursera := jsonServer(t, `{"elements": []}`)
	defer coursera.Close()
	feed := jsonServer(t, `[]`)
	defer feed.Close()
	fcc := jsonServer(t, `{}`)
	defer fcc.Close()
	gfg := jsonServer(t, `<rss version="2.0"><channel></channel></rss>`)
	defer gfg.Close()

	a := New(testConfig(coursera.URL, feed.URL, fcc.URL, gfg.URL))

	for _, c := range a.Search(context.Background(), "go") {
		if c.Platform == "Udemy" {
			t.Fatalf("Expected no Udemy records without RAPIDAPI_KEY, got %+v", c)
		}
	}
}
