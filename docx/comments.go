package docx

import "encoding/xml"

// Comment holds one resolved document comment.
type Comment struct {
	Text   string
	Author string
	Date   string
}

// commentsXML represents word/comments.xml.
type commentsXML struct {
	XMLName  xml.Name     `xml:"comments"`
	Comments []commentXML `xml:"comment"`
}

// commentXML represents a single comment entry.
type commentXML struct {
	ID         string             `xml:"id,attr"`
	Author     string             `xml:"author,attr"`
	Date       string             `xml:"date,attr"`
	Paragraphs []noteParagraphXML `xml:"p"`
}

// parseComments builds the comment-ID table; extraction follows the same
// discipline as footnotes. Comments with no text are dropped.
func parseComments(data []byte) (map[string]Comment, error) {
	var doc commentsXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}

	table := make(map[string]Comment)
	for _, c := range doc.Comments {
		text := noteText(c.Paragraphs)
		if text == "" {
			continue
		}
		author := c.Author
		if author == "" {
			author = "Unknown"
		}
		table[c.ID] = Comment{Text: text, Author: author, Date: c.Date}
	}
	return table, nil
}
