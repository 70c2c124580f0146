package sources

import (
	"context"
	"testing"

	"course-aggregator/internal/domain"
)

// MockSource is a mock implementation of the Source interface for testing.
type MockSource struct {
	NameFunc   func() string
	SearchFunc func(ctx context.Context, query string) ([]domain.Course, error)
}

func (m *MockSource) Name() string {
	return m.NameFunc()
}

func (m *MockSource) Search(ctx context.Context, query string) ([]domain.Course, error) {
	return m.SearchFunc(ctx, query)
}

func TestSourceInterface(t *testing.T) {
	mock := &MockSource{
		NameFunc: func() string { return "mock-source" },
		SearchFunc: func(ctx context.Context, query string) ([]domain.Course, error) {
			return []domain.Course{
				{
					Title:       "Mock Course",
					Description: "This is a mock course",
					URL:         "https://example.com/mock",
					Platform:    "Mock",
					Free:        true,
				},
			}, nil
		},
	}

	var _ Source = (*MockSource)(nil)

	if name := mock.Name(); name != "mock-source" {
		t.Errorf("Expected name to be 'mock-source', got %q", name)
	}

	courses, err := mock.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}
	if courses[0].Platform != "Mock" {
		t.Errorf("Expected Platform 'Mock', got %q", courses[0].Platform)
	}
}
