package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"course-aggregator/internal/domain"
)

// Searcher is the one operation the handler needs from the aggregator.
type Searcher interface {
	Search(ctx context.Context, query string) []domain.Course
}

// Handler serves the aggregation endpoint: GET with an optional free-text
// `q` parameter, JSON array out. Source failures are absorbed upstream, so
// 500 only happens when the response itself cannot be produced.
type Handler struct {
	Agg     Searcher
	Timeout time.Duration
}

func New(agg Searcher) *Handler {
	return &Handler{
		Agg:     agg,
		Timeout: 15 * time.Second,
	}
}

const (
	cacheControl = "s-maxage=3600, stale-while-revalidate=59"
	contentType  = "application/json; charset=utf-8"
)

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	courses := h.Agg.Search(ctx, query)
	if courses == nil {
		courses = []domain.Course{}
	}

	body, err := json.Marshal(courses)
	if err != nil {
		log.Printf("ERROR: encode aggregated courses: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch aggregated courses")
		return
	}

	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
