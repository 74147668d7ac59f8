package docx

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MarkdownOptions configures Markdown conversion.
type MarkdownOptions struct {
	// ImageDir, when non-empty, is the directory image members are
	// extracted to; image links in the output are rewritten against it.
	ImageDir string
}

var (
	headerPattern = regexp.MustCompile(`^word/header[0-9]*\.xml$`)
	footerPattern = regexp.MustCompile(`^word/footer[0-9]*\.xml$`)
)

// Markdown converts the document to Markdown. Headers are rendered first in
// archive order, then the main document body, then footers. Missing or
// malformed metadata parts degrade to empty tables; only a malformed main
// document is surfaced, as an error comment in place of the body.
func (r *Reader) Markdown(opts MarkdownOptions) (string, error) {
	c := newMarkdownConverter(r, opts)

	if opts.ImageDir != "" {
		ExtractImages(r, opts.ImageDir)
	}

	var parts []string

	for _, name := range r.List() {
		if !headerPattern.MatchString(name) {
			continue
		}
		data, err := r.Read(name)
		if err != nil {
			continue
		}
		var hdr headerXML
		if err := decodeXML(data, &hdr); err != nil {
			continue
		}
		if md := c.renderBody(hdr.Elements); md != "" {
			parts = append(parts, md)
		}
	}

	data, err := r.Read("word/document.xml")
	if err == nil {
		var doc documentXML
		if derr := decodeXML(data, &doc); derr != nil {
			err = derr
		} else if doc.Body != nil {
			if md := c.renderBody(doc.Body.Elements); md != "" {
				parts = append(parts, md)
			}
		}
	}
	if err != nil {
		parts = append(parts, fmt.Sprintf("<!-- Error parsing document: %v -->", err))
	}

	for _, name := range r.List() {
		if !footerPattern.MatchString(name) {
			continue
		}
		data, err := r.Read(name)
		if err != nil {
			continue
		}
		var ftr footerXML
		if err := decodeXML(data, &ftr); err != nil {
			continue
		}
		if md := c.renderBody(ftr.Elements); md != "" {
			parts = append(parts, md)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

// markdownConverter carries the resolved tables and the mutable list-counter
// state for one conversion. A fresh converter is built per conversion; no
// state is shared across calls.
type markdownConverter struct {
	rels      *Relationships
	numbering NumberingTable
	styles    StyleTable
	footnotes map[string]string
	endnotes  map[string]string
	comments  map[string]Comment
	charts    map[string]ChartInfo
	counters  listCounters
	imageDir  string
}

// newMarkdownConverter resolves all metadata tables. Each resolver is
// independently fault-tolerant: a missing or malformed part leaves its table
// empty and the rest of the pipeline intact.
func newMarkdownConverter(r *Reader, opts MarkdownOptions) *markdownConverter {
	c := &markdownConverter{
		rels:      newRelationships(),
		numbering: make(NumberingTable),
		styles:    make(StyleTable),
		footnotes: make(map[string]string),
		endnotes:  make(map[string]string),
		comments:  make(map[string]Comment),
		charts:    make(map[string]ChartInfo),
		counters:  make(listCounters),
		imageDir:  opts.ImageDir,
	}

	if data, err := r.Read(documentRelsPath); err == nil {
		if rels, err := parseRelationships(data); err == nil {
			c.rels = rels
		}
	}
	if data, err := r.Read("word/numbering.xml"); err == nil {
		if table, err := parseNumbering(data); err == nil {
			c.numbering = table
		}
	}
	if data, err := r.Read("word/styles.xml"); err == nil {
		if table, err := parseStyles(data); err == nil {
			c.styles = table
		}
	}
	if data, err := r.Read("word/footnotes.xml"); err == nil {
		if table, err := parseFootnotes(data); err == nil {
			c.footnotes = table
		}
	}
	if data, err := r.Read("word/endnotes.xml"); err == nil {
		if table, err := parseEndnotes(data); err == nil {
			c.endnotes = table
		}
	}
	if data, err := r.Read("word/comments.xml"); err == nil {
		if table, err := parseComments(data); err == nil {
			c.comments = table
		}
	}
	if charts, err := resolveCharts(r); err == nil {
		c.charts = charts
	}

	return c
}

// forTableCell returns a copy of the converter for rendering table-cell
// paragraphs: list numbering, comments, and charts are disabled inside
// cells.
func (c *markdownConverter) forTableCell() *markdownConverter {
	cell := *c
	cell.numbering = nil
	cell.comments = nil
	cell.charts = nil
	cell.counters = nil
	return &cell
}

// renderBody renders the top-level elements of one body in document order,
// appending footnote and endnote definitions when any were resolved.
func (c *markdownConverter) renderBody(elements []bodyElement) string {
	var parts []string

	for _, el := range elements {
		switch {
		case el.Paragraph != nil:
			if md := c.renderParagraph(el.Paragraph); md != "" {
				parts = append(parts, md)
			}
		case el.Table != nil:
			if md := c.renderTable(el.Table); md != "" {
				parts = append(parts, md, "")
			}
		}
	}

	if defs := noteDefinitions(c.footnotes, c.endnotes); len(defs) > 0 {
		parts = append(parts, "")
		parts = append(parts, defs...)
	}

	return strings.Join(parts, "\n\n")
}

// renderParagraph converts one paragraph to Markdown: break markers first,
// then heading / list classification, then inline content and drawings.
func (c *markdownConverter) renderParagraph(p *paragraphXML) string {
	prefix := ""
	switch {
	case p.Properties.PageBreakBefore != nil:
		prefix = "<!-- Page Break -->\n\n"
	case p.HasSectPr || p.Properties.SectPr != nil:
		prefix = "<!-- Section Break -->\n\n"
	}

	level := c.styles.HeadingLevel(p.Properties.Style.Val)

	isList := false
	listLevel := 0
	listCounter := 1
	var listType ListType
	if np := p.Properties.NumPr; np != nil && np.ILvl != nil && np.NumID != nil && c.numbering != nil {
		if def, ok := c.numbering[np.NumID.Val]; ok {
			isList = true
			listLevel = atoiDefault(np.ILvl.Val, 0)
			listType = def.Type
			if listType == ListNumber && c.counters != nil {
				listCounter = c.counters.next(np.NumID.Val, listLevel)
			}
		}
	}

	var b strings.Builder
	for _, ch := range p.Children {
		switch {
		case ch.Run != nil:
			b.WriteString(renderRun(ch.Run))
		case ch.Hyperlink != nil:
			var linkText strings.Builder
			for i := range ch.Hyperlink.Runs {
				linkText.WriteString(renderRun(&ch.Hyperlink.Runs[i]))
			}
			if linkText.Len() > 0 {
				url := "#"
				if target, ok := c.rels.Hyperlinks[ch.Hyperlink.ID]; ok {
					url = target
				}
				b.WriteString("[" + linkText.String() + "](" + url + ")")
			}
		case ch.CommentEnd != nil:
			if comment, ok := c.comments[ch.CommentEnd.ID]; ok {
				b.WriteString(" <!-- Comment by " + comment.Author + ": " + excerpt(comment.Text, 50) + "... -->")
			}
		}
	}

	for _, drawing := range p.drawings() {
		if rid := drawing.chartRID(); rid != "" {
			b.WriteString(c.renderChartBlock(rid))
			continue
		}
		rid := drawing.imageRID()
		if rid == "" {
			continue
		}
		target, ok := c.rels.Images[rid]
		if !ok || target == "" {
			continue
		}
		base := path.Base(target)
		link := target
		if c.imageDir != "" {
			link = filepath.Join(c.imageDir, base)
		}
		b.WriteString("\n![" + base + "](" + link + ")\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" && !isList {
		return strings.TrimSpace(prefix)
	}

	switch {
	case level > 0:
		return prefix + strings.Repeat("#", level) + " " + text
	case isList:
		indent := strings.Repeat("  ", listLevel)
		if listType == ListBullet {
			return prefix + indent + "- " + text
		}
		return prefix + indent + strconv.Itoa(listCounter) + ". " + text
	default:
		return prefix + text
	}
}

// renderChartBlock emits the Markdown summary for one embedded chart: an
// HTML comment, an italic caption, and a fenced data block when numeric
// series were resolved. Unresolved relationship IDs get a visible
// placeholder.
func (c *markdownConverter) renderChartBlock(rid string) string {
	info, ok := c.charts[rid]
	if !ok {
		return "\n\n*[Chart (relationship ID: " + rid + ") - data not available]*\n"
	}

	title := info.Title
	if title == "" {
		title = "Chart"
	}

	var b strings.Builder
	b.WriteString("\n\n<!-- Chart: " + title)
	if info.Type != "" {
		b.WriteString(" (" + info.Type + ")")
	}
	b.WriteString(" -->\n")
	b.WriteString("*[Chart: " + title)
	if info.Type != "" {
		b.WriteString(" (" + info.Type + ")")
	}
	b.WriteString("]*\n")

	if len(info.Series) > 0 {
		b.WriteString("\n```\nChart Data:\n")
		for _, s := range info.Series {
			b.WriteString("\n" + s.Name + ":\n")
			if s.Categories != nil && len(s.Categories) == len(s.Values) {
				for i, cat := range s.Categories {
					b.WriteString("  " + cat + ": " + formatChartValue(s.Values[i]) + "\n")
				}
			} else {
				vals := make([]string, len(s.Values))
				for i, v := range s.Values {
					vals[i] = formatChartValue(v)
				}
				b.WriteString("  Values: " + strings.Join(vals, ", ") + "\n")
			}
		}
		b.WriteString("```\n")
	} else if info.HasData {
		b.WriteString("<!-- Chart contains data (embedded Excel reference) -->\n")
	}

	return b.String()
}

// renderRun converts one run to Markdown text: text nodes first, then tabs
// as four spaces, line breaks as newlines, and note references as [^id]
// markers. Formatting wraps the assembled text, strikethrough innermost.
func renderRun(run *runXML) string {
	var b strings.Builder
	for _, t := range run.Text {
		b.WriteString(t.Value)
	}
	for range run.Tabs {
		b.WriteString("    ")
	}
	for range run.Breaks {
		b.WriteString("\n")
	}
	for _, ref := range run.FootnoteRefs {
		b.WriteString("[^" + ref.ID + "]")
	}
	for _, ref := range run.EndnoteRefs {
		b.WriteString("[^" + ref.ID + "]")
	}

	text := b.String()
	if text == "" {
		return ""
	}

	props := run.Properties
	if props.Strike.on() || props.Deleted.on() {
		text = "~~" + text + "~~"
	}
	bold, italic := props.Bold.on(), props.Italic.on()
	switch {
	case bold && italic:
		text = "***" + text + "***"
	case bold:
		text = "**" + text + "**"
	case italic:
		text = "*" + text + "*"
	}
	return text
}

// noteDefinitions renders footnote then endnote definitions, each group
// sorted by ascending numeric ID. Non-numeric IDs sort as zero, with the raw
// ID as tie-break for determinism.
func noteDefinitions(footnotes, endnotes map[string]string) []string {
	var defs []string
	for _, group := range []map[string]string{footnotes, endnotes} {
		ids := make([]string, 0, len(group))
		for id := range group {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			ni, nj := noteSortKey(ids[i]), noteSortKey(ids[j])
			if ni != nj {
				return ni < nj
			}
			return ids[i] < ids[j]
		})
		for _, id := range ids {
			defs = append(defs, "[^"+id+"]: "+group[id])
		}
	}
	return defs
}

// noteSortKey maps an all-digit note ID to its numeric value and anything
// else to zero.
func noteSortKey(id string) int {
	if id == "" {
		return 0
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// formatChartValue renders a chart value with the shortest exact decimal
// representation.
func formatChartValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// atoiDefault parses s as an integer, returning def when parsing fails.
func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
