package coursera

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearchMapsElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "go concurrency" {
			t.Errorf("Expected query 'go concurrency', got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"elements": [
				{"name": "Go Basics", "description": "Learn Go", "photoUrl": "https://img/1.png", "slug": "go-basics"},
				{"name": "Go Advanced", "tagline": "Beyond basics", "slug": "go-advanced"}
			]
		}`))
	}))
	defer srv.Close()

	s := New(srv.URL, 5*time.Second)

	courses, err := s.Search(context.Background(), "go concurrency")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("Expected 2 courses, got %d", len(courses))
	}

	first := courses[0]
	if first.Title != "Go Basics" {
		t.Errorf("Expected title 'Go Basics', got %q", first.Title)
	}
	if first.URL != "https://www.coursera.org/learn/go-basics" {
		t.Errorf("Expected slug-derived URL, got %q", first.URL)
	}
	if first.Platform != "Coursera" {
		t.Errorf("Expected platform 'Coursera', got %q", first.Platform)
	}
	if !first.Free {
		t.Error("Expected catalog courses to be marked free")
	}

	// description falls back to tagline
	if courses[1].Description != "Beyond basics" {
		t.Errorf("Expected tagline fallback, got %q", courses[1].Description)
	}
}

func TestSearchPropagatesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(srv.URL, 5*time.Second)

	if _, err := s.Search(context.Background(), "go"); err == nil {
		t.Fatal("Expected error for 503 response")
	}
}

func TestCourseURL(t *testing.T) {
	testCases := []struct {
		slug     string
		expected string
	}{
		{"go-basics", "https://www.coursera.org/learn/go-basics"},
		{"  go-basics  ", "https://www.coursera.org/learn/go-basics"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := courseURL(tc.slug); got != tc.expected {
			t.Errorf("courseURL(%q) = %q, want %q", tc.slug, got, tc.expected)
		}
	}
}
