package catalog

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTag    = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanDescription turns an HTML job description into plain text with
// collapsed whitespace. Text without markup is returned unchanged.
func CleanDescription(description string) string {
	if !htmlTag.MatchString(description) {
		return description
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return collapse(description)
	}
	doc.Find("script, style, noscript").Remove()

	// Block elements would otherwise run their words together.
	doc.Find("p, li, br, div, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
