package docx

import (
	"encoding/xml"
	"strings"
)

// footnotesXML represents word/footnotes.xml.
type footnotesXML struct {
	XMLName xml.Name  `xml:"footnotes"`
	Notes   []noteXML `xml:"footnote"`
}

// endnotesXML represents word/endnotes.xml.
type endnotesXML struct {
	XMLName xml.Name  `xml:"endnotes"`
	Notes   []noteXML `xml:"endnote"`
}

// noteXML represents one footnote or endnote entry.
type noteXML struct {
	ID         string             `xml:"id,attr"`
	Paragraphs []noteParagraphXML `xml:"p"`
}

// noteParagraphXML is a paragraph inside a note, comment, or similar
// text-only container. Runs holds direct runs and runs nested in
// hyperlinks, in document order.
type noteParagraphXML struct {
	Runs []runXML
}

func (p *noteParagraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case nameMatches(t.Name, qnR):
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case nameMatches(t.Name, qnHyperlink):
				var link hyperlinkXML
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, link.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// parseFootnotes builds the footnote-ID to plain-text table. Separator
// pseudo-notes carry no text and are dropped.
func parseFootnotes(data []byte) (map[string]string, error) {
	var doc footnotesXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}
	return noteTable(doc.Notes), nil
}

// parseEndnotes builds the endnote-ID to plain-text table.
func parseEndnotes(data []byte) (map[string]string, error) {
	var doc endnotesXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}
	return noteTable(doc.Notes), nil
}

func noteTable(notes []noteXML) map[string]string {
	table := make(map[string]string)
	for _, note := range notes {
		if text := noteText(note.Paragraphs); text != "" {
			table[note.ID] = text
		}
	}
	return table
}

// noteText concatenates the run text of note paragraphs: line breaks become
// newlines, each paragraph contributes a trailing newline, and the result is
// trimmed.
func noteText(paragraphs []noteParagraphXML) string {
	var b strings.Builder
	for _, p := range paragraphs {
		for _, run := range p.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Value)
			}
			for range run.Breaks {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
