package geeksforgeeks

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML flattens embedded markup to plain text. Feed fields routinely
// carry <p>/<a>/<img> wrappers and entities; parsing beats the old
// regex-replace approach on malformed fragments.
func stripHTML(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(collapseSpace(doc.Text()))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
