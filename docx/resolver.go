package docx

import (
	"encoding/xml"
	"strings"
)

// documentRelsPath is the relationships part for the main document.
const documentRelsPath = "word/_rels/document.xml.rels"

// relationshipsXML represents a _rels/*.rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents a single relationship entry.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// Relationships holds the resolved relationship targets of one document
// part, split by kind.
type Relationships struct {
	Hyperlinks map[string]string
	Images     map[string]string
}

func newRelationships() *Relationships {
	return &Relationships{
		Hyperlinks: make(map[string]string),
		Images:     make(map[string]string),
	}
}

// parseRelationships classifies relationship entries into hyperlink and
// image targets. Classification matches the type substring case-insensitively
// and the official type URIs exactly.
func parseRelationships(data []byte) (*Relationships, error) {
	var doc relationshipsXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}

	rels := newRelationships()
	for _, rel := range doc.Relationships {
		lower := strings.ToLower(rel.Type)
		switch {
		case strings.Contains(lower, "hyperlink") || rel.Type == relTypeHyperlink:
			rels.Hyperlinks[rel.ID] = rel.Target
		case strings.Contains(lower, "image") || rel.Type == relTypeImage:
			rels.Images[rel.ID] = rel.Target
		}
	}
	return rels, nil
}

// chartRelTargets returns relationship-ID to archive-path mappings for chart
// parts referenced by the document relationships. Relative targets are
// resolved against the word/ directory.
func chartRelTargets(data []byte) (map[string]string, error) {
	var doc relationshipsXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range doc.Relationships {
		lower := strings.ToLower(rel.Type)
		if !strings.Contains(lower, "chart") && rel.Type != relTypeChart {
			continue
		}
		target := rel.Target
		if !strings.HasPrefix(target, "word/") {
			target = "word/" + target
		}
		targets[rel.ID] = target
	}
	return targets, nil
}
