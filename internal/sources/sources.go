package sources

import (
	"context"

	"course-aggregator/internal/domain"
)

// Source queries one third-party service and normalizes its response into
// Course records. Implementations return an error instead of swallowing it;
// the aggregator decides how failures collapse (log + contribute nothing).
type Source interface {
	Name() string
	Search(ctx context.Context, query string) ([]domain.Course, error)
}

// Result is one source's settled outcome. It keeps failure visible for
// logging and tests before the aggregator flattens everything into a plain
// list at the handler boundary.
type Result struct {
	Source  string
	Courses []domain.Course
	Err     error
}
