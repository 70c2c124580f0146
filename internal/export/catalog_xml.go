package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"course-aggregator/internal/domain"
)

/*
Catalog XML shape:

<Course_List>
  <Course>
    <title>...</title>
    <description>...</description>
    <url>...</url>
    <image_url>...</image_url>
    <platform>Coursera</platform>
    <free>true</free>
  </Course>
</Course_List>
*/

type xmlCourseList struct {
	XMLName xml.Name    `xml:"Course_List"`
	Courses []xmlCourse `xml:"Course"`
}

type xmlCourse struct {
	Title       string `xml:"title,omitempty"`
	Description string `xml:"description,omitempty"`
	URL         string `xml:"url,omitempty"`
	ImageURL    string `xml:"image_url,omitempty"`
	Platform    string `xml:"platform"`
	Free        bool   `xml:"free"`
}

// WriteCatalogXML writes the aggregated catalog as a single XML document.
func WriteCatalogXML(w io.Writer, courses []domain.Course) error {
	out := xmlCourseList{
		Courses: make([]xmlCourse, 0, len(courses)),
	}

	for _, c := range courses {
		out.Courses = append(out.Courses, xmlCourse{
			Title:       strings.TrimSpace(c.Title),
			Description: strings.TrimSpace(c.Description),
			URL:         strings.TrimSpace(c.URL),
			ImageURL:    strings.TrimSpace(c.Image),
			Platform:    strings.TrimSpace(c.Platform),
			Free:        c.Free,
		})
	}

	b, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal xml: %w", err)
	}

	if _, err := w.Write(append([]byte(xml.Header), b...)); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}
	return nil
}
