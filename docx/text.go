package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Text extracts the plain text of the document: headers first in archive
// order, then the main document, then footers. Paragraphs become blank-line
// separated blocks, tabs and line breaks are preserved. Unlike Markdown, a
// malformed main document is a hard error.
func (r *Reader) Text() (string, error) {
	var parts []string

	for _, name := range r.List() {
		if !headerPattern.MatchString(name) {
			continue
		}
		data, err := r.Read(name)
		if err != nil {
			continue
		}
		text, err := xmlToText(data)
		if err != nil {
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	data, err := r.Read("word/document.xml")
	if err != nil {
		return "", fmt.Errorf("reading document body: %w", err)
	}
	text, err := xmlToText(data)
	if err != nil {
		return "", fmt.Errorf("parsing document body: %w", err)
	}
	if text != "" {
		parts = append(parts, text)
	}

	for _, name := range r.List() {
		if !footerPattern.MatchString(name) {
			continue
		}
		data, err := r.Read(name)
		if err != nil {
			continue
		}
		text, err := xmlToText(data)
		if err != nil {
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

var (
	qnT   = mustQualify("w:t")
	qnTab = mustQualify("w:tab")
	qnBr  = mustQualify("w:br")
	qnCr  = mustQualify("w:cr")
)

// xmlToText walks the raw token stream of one XML part and collects text
// content. Paragraph starts become paragraph separators, w:tab a tab, and
// w:br / w:cr a newline. Only character data inside w:t elements is kept.
func xmlToText(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case nameMatches(t.Name, qnT):
				inText = true
			case nameMatches(t.Name, qnP):
				if b.Len() > 0 {
					b.WriteString("\n\n")
				}
			case nameMatches(t.Name, qnTab):
				b.WriteString("\t")
			case nameMatches(t.Name, qnBr), nameMatches(t.Name, qnCr):
				b.WriteString("\n")
			}
		case xml.EndElement:
			if nameMatches(t.Name, qnT) {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
