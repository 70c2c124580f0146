package export

import (
	"encoding/csv"
	"io"
	"strings"

	"course-aggregator/internal/domain"
)

// Catalog CSV header. Keep order EXACT; downstream imports key on position.
var catalogHeader = []string{
	"TITLE",
	"DESCRIPTION",
	"URL",
	"IMAGE_URL",
	"PLATFORM",
	"FREE",
}

// WriteCatalogCSV writes the aggregated catalog in the flat import format.
func WriteCatalogCSV(w io.Writer, courses []domain.Course) error {
	cw := csv.NewWriter(w)
	// match typical templates
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, c := range courses {
		if err := cw.Write(toCatalogRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toCatalogRow(c domain.Course) []string {
	free := "false"
	if c.Free {
		free = "true"
	}

	return []string{
		cleanField(c.Title),
		cleanField(c.Description),
		strings.TrimSpace(c.URL),
		strings.TrimSpace(c.Image),
		strings.TrimSpace(c.Platform),
		free,
	}
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	// avoid newlines inside cells
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
