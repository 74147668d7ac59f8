package docx

import (
	"encoding/xml"
	"strconv"
)

// ListType represents the kind of a list definition.
type ListType int

const (
	ListBullet ListType = iota // bullet list
	ListNumber                 // ordered list
)

// ListDef holds the resolved semantics of one numbering definition.
type ListDef struct {
	Type ListType
	// NumFormat is the display format token for ordered lists
	// (decimal, lowerRoman, upperLetter, ...).
	NumFormat string
}

// NumberingTable maps numbering IDs (w:numId) to list definitions.
type NumberingTable map[string]ListDef

// numberingXML represents word/numbering.xml.
type numberingXML struct {
	XMLName      xml.Name         `xml:"numbering"`
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

// abstractNumXML represents an abstract numbering definition.
type abstractNumXML struct {
	AbstractNumID string   `xml:"abstractNumId,attr"`
	Levels        []lvlXML `xml:"lvl"`
}

// lvlXML represents a numbering level.
type lvlXML struct {
	ILvl   string  `xml:"ilvl,attr"`
	NumFmt *valXML `xml:"numFmt"`
}

// numXML represents a concrete numbering instance.
type numXML struct {
	NumID         string  `xml:"numId,attr"`
	AbstractNumID *valXML `xml:"abstractNumId"`
}

// parseNumbering builds the numId-keyed list table. Every level entry of the
// abstract definition is scanned and the last format seen wins; top-level
// single-level lists are unaffected, deeper definitions keep this historical
// behavior.
func parseNumbering(data []byte) (NumberingTable, error) {
	var doc numberingXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, err
	}

	table := make(NumberingTable)
	for _, num := range doc.Nums {
		if num.AbstractNumID == nil {
			continue
		}
		for i := range doc.AbstractNums {
			an := &doc.AbstractNums[i]
			if an.AbstractNumID != num.AbstractNumID.Val {
				continue
			}

			def := ListDef{Type: ListBullet, NumFormat: "decimal"}
			for _, lvl := range an.Levels {
				if lvl.NumFmt == nil {
					continue
				}
				format := lvl.NumFmt.Val
				if format == "" {
					format = "decimal"
				}
				if format == "bullet" {
					def.Type = ListBullet
				} else {
					def.Type = ListNumber
					def.NumFormat = format
				}
			}

			table[num.NumID] = def
			break
		}
	}
	return table, nil
}

// listCounters tracks running ordinals per (numId, indent level) pair for one
// whole conversion. Counters only grow; they are never reset mid-document.
type listCounters map[string]int

// next increments and returns the ordinal for the given pair.
func (lc listCounters) next(numID string, ilvl int) int {
	key := numID + "_" + strconv.Itoa(ilvl)
	lc[key]++
	return lc[key]
}
