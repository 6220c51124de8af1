// Package htmlmeta derives display metadata from stored rich-text
// content: plain-text excerpts for list views and heading outlines for
// the article detail page. Everything here is a pure function of the
// content string and is recomputed on every call; nothing is persisted.
package htmlmeta

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ExcerptLength is the number of characters kept from the markup-stripped content.
const ExcerptLength = 150

// Heading is one entry of an article's outline.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"id"`
}

// Excerpt strips markup from the content and truncates the remaining
// text to ExcerptLength characters plus an ellipsis marker. Malformed
// content degrades to an empty excerpt instead of failing.
func Excerpt(content string) string {
	text := []rune(plainText(content))
	if len(text) > ExcerptLength {
		text = text[:ExcerptLength]
	}
	return string(text) + "..."
}

// Headings scans the content for heading elements (h1-h6) and returns
// them in document order. Anchors are sequential across all headings,
// 1-based, regardless of level.
func Headings(content string) []Heading {
	headings := []Heading{}
	z := html.NewTokenizer(strings.NewReader(content))

	level := 0
	var text strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF or malformed input, either way the scan is over
			return headings
		case html.StartTagToken:
			if l := headingLevel(z.Token().Data); l > 0 {
				level = l
				text.Reset()
			}
		case html.TextToken:
			if level > 0 {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			if l := headingLevel(z.Token().Data); l > 0 && l == level {
				headings = append(headings, Heading{
					Level:  level,
					Text:   strings.TrimSpace(text.String()),
					Anchor: fmt.Sprintf("heading-%d", len(headings)+1),
				})
				level = 0
			}
		}
	}
}

// plainText returns the text content of the markup, tags removed.
func plainText(content string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))

	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			if t := z.Token().Data; t == "script" || t == "style" {
				skip++
			}
		case html.EndTagToken:
			if t := z.Token().Data; (t == "script" || t == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
