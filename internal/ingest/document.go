// Package ingest reduces user-supplied supporting documents to plain text
// suitable for prompt composition.
package ingest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagPattern        = regexp.MustCompile(`(?i)<(html|body|div|p|span|table|ul|ol|h[1-6])[\s>]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// PlainText returns document content stripped to plain text. HTML input
// (users paste exported pages and rich-text documents) has its markup,
// scripts, and styles removed; anything else passes through with whitespace
// collapsed. Sanitization is best-effort: if HTML parsing fails the content
// is returned as-is rather than dropped.
func PlainText(content string) string {
	if looksLikeHTML(content) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
		if err == nil {
			doc.Find("script, style, noscript, nav, footer, header").Remove()
			content = doc.Text()
		}
	}
	return cleanWhitespace(content)
}

// looksLikeHTML reports whether content appears to be an HTML document
// rather than plain prose.
func looksLikeHTML(content string) bool {
	return tagPattern.MatchString(content)
}

// cleanWhitespace collapses runs of whitespace into single spaces.
func cleanWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
