package aggregator

import (
	"context"
	"log"

	"course-aggregator/internal/concurrency"
	"course-aggregator/internal/config"
	"course-aggregator/internal/domain"
	"course-aggregator/internal/sources"
	"course-aggregator/internal/sources/classcentral"
	"course-aggregator/internal/sources/coursera"
	"course-aggregator/internal/sources/freecodecamp"
	"course-aggregator/internal/sources/geeksforgeeks"
	"course-aggregator/internal/sources/udemy"
)

// Aggregator fans a query out to every enabled source, waits for all of them
// to settle, and merges whatever came back. Source failures are logged and
// contribute nothing; they never fail the request.
type Aggregator struct {
	Sources []sources.Source
}

// New wires the standing sources from config. Udemy joins only when a
// RapidAPI key is configured.
func New(cfg config.Config) *Aggregator {
	srcs := []sources.Source{
		coursera.New(cfg.CourseraBaseURL, cfg.HTTPTimeout),
		classcentral.New(cfg.ClassCentralFeedURL, cfg.HTTPTimeout),
		freecodecamp.New(cfg.FCCCurriculumURL, cfg.HTTPTimeout),
		geeksforgeeks.New(cfg.GFGFeedURL, cfg.HTTPTimeout),
	}
	if cfg.UdemyEnabled() {
		srcs = append(srcs, udemy.New(cfg.RapidAPIKey, cfg.RapidAPIHost, cfg.HTTPTimeout))
	}
	return &Aggregator{Sources: srcs}
}

// Search runs the fan-out and returns the merged, deduplicated list. The
// returned slice is never nil.
func (a *Aggregator) Search(ctx context.Context, query string) []domain.Course {
	results := a.collect(ctx, query)

	merged := make([]domain.Course, 0, 64)
	seen := map[string]bool{}

	for _, r := range results {
		if r.Err != nil {
			log.Printf("WARN: %s failed: %v", r.Source, r.Err)
			continue
		}
		for _, c := range r.Courses {
			if c.IsZero() {
				continue
			}
			key := c.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, c)
		}
	}
	return merged
}

// collect settles every source and keeps each outcome attributed to its
// source name, in declaration order.
func (a *Aggregator) collect(ctx context.Context, query string) []sources.Result {
	courses, errs := concurrency.Settle(ctx, a.Sources,
		func(ctx context.Context, _ int, src sources.Source) ([]domain.Course, error) {
			return src.Search(ctx, query)
		})

	out := make([]sources.Result, len(a.Sources))
	for i, src := range a.Sources {
		out[i] = sources.Result{Source: src.Name(), Courses: courses[i], Err: errs[i]}
	}
	return out
}
