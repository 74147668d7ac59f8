package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// StyleInfo describes one style definition from word/styles.xml.
type StyleInfo struct {
	Type         string // paragraph, character, table, numbering
	Name         string
	BasedOn      string
	IsHeading    bool
	HeadingLevel int // 1-6, 0 when unknown
}

// StyleTable maps style IDs to style metadata.
type StyleTable map[string]StyleInfo

// stylesXML represents word/styles.xml.
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a single style definition.
type styleDefXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Name    valXML `xml:"name"`
	BasedOn valXML `xml:"basedOn"`
}

// parseStyles builds the style table in a single top-to-bottom scan. A style
// whose own name does not mark it as a heading inherits heading status from
// its basedOn parent when the parent was already scanned; forward references
// are left unresolved here and picked up by the recursive walk in
// HeadingLevel at render time.
func parseStyles(data []byte) (StyleTable, error) {
	var doc stylesXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}

	table := make(StyleTable)
	for _, def := range doc.Styles {
		info := StyleInfo{
			Type:    def.Type,
			Name:    def.Name.Val,
			BasedOn: def.BasedOn.Val,
		}

		if info.Name != "" {
			name := strings.ToLower(info.Name)
			if strings.Contains(name, "heading") || strings.Contains(name, "title") {
				info.IsHeading = true
				for i := 1; i <= 6; i++ {
					n := strconv.Itoa(i)
					if strings.Contains(name, "heading"+n) || strings.Contains(name, "heading "+n) {
						info.HeadingLevel = i
						break
					}
				}
				if info.HeadingLevel == 0 && strings.Contains(name, "title") {
					info.HeadingLevel = 1
				}
			}
		}

		if !info.IsHeading && info.BasedOn != "" {
			if parent, ok := table[info.BasedOn]; ok && parent.IsHeading {
				info.IsHeading = true
				info.HeadingLevel = parent.HeadingLevel
			}
		}

		if def.StyleID != "" {
			table[def.StyleID] = info
		}
	}
	return table, nil
}

// maxStyleDepth bounds the basedOn walk. Style hierarchies in practice are a
// few levels deep; a chain longer than this is treated as malformed and the
// style resolves as a non-heading.
const maxStyleDepth = 8

// HeadingLevel resolves the Markdown heading level for a paragraph style ID.
// Pattern matching on the raw ID is tried first and wins when it matches;
// the style table is consulted next, walking basedOn parents with a visited
// set and a depth cap. Returns 0 for non-headings.
func (t StyleTable) HeadingLevel(styleID string) int {
	return t.headingLevel(styleID, make(map[string]bool), 0)
}

func (t StyleTable) headingLevel(styleID string, visited map[string]bool, depth int) int {
	if styleID == "" || depth > maxStyleDepth || visited[styleID] {
		return 0
	}
	visited[styleID] = true

	if level := headingLevelFromID(styleID); level > 0 {
		return level
	}

	info, ok := t[styleID]
	if !ok {
		return 0
	}
	if info.IsHeading && info.HeadingLevel > 0 {
		return info.HeadingLevel
	}
	if info.BasedOn != "" {
		return t.headingLevel(info.BasedOn, visited, depth+1)
	}
	return 0
}

// headingLevelFromID pattern-matches well-known heading style IDs.
func headingLevelFromID(styleID string) int {
	id := strings.ToLower(styleID)
	if strings.Contains(id, "title") {
		return 1
	}
	for i := 1; i <= 6; i++ {
		n := strconv.Itoa(i)
		if strings.Contains(id, "heading"+n) || strings.Contains(id, "heading "+n) || id == "h"+n {
			return i
		}
	}
	return 0
}
