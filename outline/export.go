package outline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// TOC returns an indented plain-text table of contents for the tree.
func TOC(items []*Item) string {
	var sb strings.Builder
	writeTOC(&sb, items, 0, "")
	return sb.String()
}

// MarkdownTOC returns a markdown-formatted table of contents, one nested list
// item per section.
func MarkdownTOC(items []*Item) string {
	var sb strings.Builder
	writeTOC(&sb, items, 0, "- ")
	return sb.String()
}

// writeTOC writes items as indented lines with an optional bullet.
func writeTOC(sb *strings.Builder, items []*Item, depth int, bullet string) {
	for _, item := range items {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(bullet)
		sb.WriteString(item.Title)
		sb.WriteString("\n")
		writeTOC(sb, item.Children, depth+1, bullet)
	}
}

// HTMLTOC renders the table of contents as an HTML nested list by converting
// the markdown form with goldmark.
func HTMLTOC(items []*Item) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(MarkdownTOC(items)), &buf); err != nil {
		return "", fmt.Errorf("render outline HTML: %w", err)
	}
	return buf.String(), nil
}
