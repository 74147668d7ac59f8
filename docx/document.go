package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML holds the body children in document order. encoding/xml collects
// repeated fields per tag, which loses the paragraph/table interleaving the
// renderer depends on, so the element list is built by a custom unmarshaller.
type bodyXML struct {
	Elements []bodyElement
}

func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	elements, err := collectBodyElements(d, start)
	if err != nil {
		return err
	}
	b.Elements = elements
	return nil
}

// headerXML represents the structure of word/header*.xml files (<w:hdr>).
type headerXML struct {
	XMLName  xml.Name `xml:"hdr"`
	Elements []bodyElement
}

func (h *headerXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	h.XMLName = start.Name
	elements, err := collectBodyElements(d, start)
	if err != nil {
		return err
	}
	h.Elements = elements
	return nil
}

// footerXML represents the structure of word/footer*.xml files (<w:ftr>).
type footerXML struct {
	XMLName  xml.Name `xml:"ftr"`
	Elements []bodyElement
}

func (f *footerXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	f.XMLName = start.Name
	elements, err := collectBodyElements(d, start)
	if err != nil {
		return err
	}
	f.Elements = elements
	return nil
}

// bodyElement is one top-level body child: a paragraph or a table.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

var (
	qnP               = mustQualify("w:p")
	qnTbl             = mustQualify("w:tbl")
	qnPPr             = mustQualify("w:pPr")
	qnR               = mustQualify("w:r")
	qnHyperlink       = mustQualify("w:hyperlink")
	qnCommentRangeEnd = mustQualify("w:commentRangeEnd")
	qnSectPr          = mustQualify("w:sectPr")
)

// collectBodyElements reads the children of a body-like element (w:body,
// w:hdr, w:ftr) preserving document order.
func collectBodyElements(d *xml.Decoder, start xml.StartElement) ([]bodyElement, error) {
	var elements []bodyElement

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case nameMatches(t.Name, qnP):
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return nil, err
				}
				elements = append(elements, bodyElement{Paragraph: &p})
			case nameMatches(t.Name, qnTbl):
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return nil, err
				}
				elements = append(elements, bodyElement{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return elements, nil
			}
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>). Children that the
// renderer walks (runs, hyperlinks, comment range ends) are kept in document
// order.
type paragraphXML struct {
	Properties paragraphPropsXML
	Children   []paragraphChild
	// HasSectPr is set when w:sectPr appears as a direct paragraph child.
	HasSectPr bool
}

// paragraphChild is one ordered inline child of a paragraph.
type paragraphChild struct {
	Run        *runXML
	Hyperlink  *hyperlinkXML
	CommentEnd *commentRangeEndXML
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case nameMatches(t.Name, qnPPr):
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case nameMatches(t.Name, qnR):
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, paragraphChild{Run: &run})
			case nameMatches(t.Name, qnHyperlink):
				var link hyperlinkXML
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, paragraphChild{Hyperlink: &link})
			case nameMatches(t.Name, qnCommentRangeEnd):
				var end commentRangeEndXML
				if err := d.DecodeElement(&end, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, paragraphChild{CommentEnd: &end})
			case nameMatches(t.Name, qnSectPr):
				p.HasSectPr = true
				if err := d.Skip(); err != nil {
					return err
				}
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

// drawings returns all drawing elements of the paragraph's runs, including
// runs nested in hyperlinks, in child order.
func (p *paragraphXML) drawings() []drawingXML {
	var drawings []drawingXML
	for _, ch := range p.Children {
		switch {
		case ch.Run != nil:
			drawings = append(drawings, ch.Run.Drawings...)
		case ch.Hyperlink != nil:
			for _, run := range ch.Hyperlink.Runs {
				drawings = append(drawings, run.Drawings...)
			}
		}
	}
	return drawings
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style           valXML             `xml:"pStyle"`
	NumPr           *numberingPropsXML `xml:"numPr"`
	PageBreakBefore *markerXML         `xml:"pageBreakBefore"`
	SectPr          *markerXML         `xml:"sectPr"`
}

// markerXML represents an element whose mere presence matters.
type markerXML struct{}

// valXML represents any element carrying a single w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for list items.
type numberingPropsXML struct {
	ILvl  *valXML `xml:"ilvl"`
	NumID *valXML `xml:"numId"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties   runPropsXML  `xml:"rPr"`
	Text         []textXML    `xml:"t"`
	Tabs         []markerXML  `xml:"tab"`
	Breaks       []breakXML   `xml:"br"`
	FootnoteRefs []noteRefXML `xml:"footnoteReference"`
	EndnoteRefs  []noteRefXML `xml:"endnoteReference"`
	Drawings     []drawingXML `xml:"drawing"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold    boolXML `xml:"b"`
	Italic  boolXML `xml:"i"`
	Strike  boolXML `xml:"strike"`
	Deleted boolXML `xml:"delText"`
}

// boolXML represents a toggleable run property. Presence enables the
// property unless val explicitly disables it.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// on reports whether the property is present and enabled.
func (b boolXML) on() bool {
	return b.XMLName.Local != "" && b.Val != "false" && b.Val != "0"
}

// textXML represents text content (<w:t>).
type textXML struct {
	Value string `xml:",chardata"`
}

// breakXML represents a line, column, or page break (<w:br>).
type breakXML struct {
	Type string `xml:"type,attr"`
}

// noteRefXML represents a footnote or endnote reference.
type noteRefXML struct {
	ID string `xml:"id,attr"`
}

// hyperlinkXML represents a hyperlink (<w:hyperlink>).
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// commentRangeEndXML marks the end of a commented range.
type commentRangeEndXML struct {
	ID string `xml:"id,attr"`
}

// drawingXML represents an embedded drawing: an image or a chart frame.
type drawingXML struct {
	Inline *drawingContainerXML `xml:"inline"`
	Anchor *drawingContainerXML `xml:"anchor"`
}

// drawingContainerXML is the shared inline/anchor payload.
type drawingContainerXML struct {
	Chart *chartRefXML     `xml:"graphic>graphicData>chart"`
	Frame *graphicFrameXML `xml:"graphicFrame"`
	Blip  *blipXML         `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// graphicFrameXML is the alternate container some producers use for charts.
type graphicFrameXML struct {
	Chart *chartRefXML `xml:"graphic>graphicData>chart"`
}

// chartRefXML references a chart part by relationship ID.
type chartRefXML struct {
	RID string `xml:"id,attr"`
}

// blipXML references an image by relationship ID.
type blipXML struct {
	Embed string `xml:"embed,attr"`
	Link  string `xml:"link,attr"`
}

// chartRID returns the chart relationship ID of the drawing, checking the
// direct graphicData location first and the graphicFrame container second.
func (d drawingXML) chartRID() string {
	for _, c := range []*drawingContainerXML{d.Inline, d.Anchor} {
		if c == nil {
			continue
		}
		if c.Chart != nil && c.Chart.RID != "" {
			return c.Chart.RID
		}
		if c.Frame != nil && c.Frame.Chart != nil && c.Frame.Chart.RID != "" {
			return c.Frame.Chart.RID
		}
	}
	return ""
}

// imageRID returns the image relationship ID of the drawing, preferring the
// embed reference over a link.
func (d drawingXML) imageRID() string {
	for _, c := range []*drawingContainerXML{d.Inline, d.Anchor} {
		if c == nil || c.Blip == nil {
			continue
		}
		if c.Blip.Embed != "" {
			return c.Blip.Embed
		}
		if c.Blip.Link != "" {
			return c.Blip.Link
		}
	}
	return ""
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties (<w:tcPr>).
type cellPropsXML struct {
	GridSpan      valXML `xml:"gridSpan"`
	Justification valXML `xml:"jc"`
}
