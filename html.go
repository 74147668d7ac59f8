package docxmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlRenderer renders GitHub-flavored Markdown, including the tables and
// footnote syntax the Markdown conversion emits.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
	),
)

// HTML converts the document to Markdown and renders that as HTML.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	html, err := docxmark.Open("report.docx").HTML()
func (c *Converter) HTML() (string, error) {
	md, err := c.Markdown()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}
