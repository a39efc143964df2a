// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Turns WordPress titles and excerpts into plain text for speech

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes HTML tags, drops script/style content, decodes entities
// and collapses whitespace
func StripHTML(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return collapseSpaces(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseSpaces(html)
	}
	doc.Find("script, style").Remove()

	return collapseSpaces(doc.Text())
}

// DecodeText decodes entities and collapses whitespace without parsing
// markup, so text such as "List<String>" is kept intact
func DecodeText(text string) string {
	return collapseSpaces(stdhtml.UnescapeString(text))
}

// collapseSpaces trims and replaces runs of whitespace with a single space
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
