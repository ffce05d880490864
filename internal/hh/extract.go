package hh

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// ExtractText strips structural markup from a vacancy description and trims
// surrounding whitespace. Deterministic and pure: the same markup always
// yields the same text. Falls back to regex tag stripping if the markup does
// not parse.
func ExtractText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(htmlTagRe.ReplaceAllString(markup, ""))
	}
	return strings.TrimSpace(doc.Text())
}
