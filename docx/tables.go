package docx

import (
	"strconv"
	"strings"
)

// renderTable converts one table to a GitHub-flavored Markdown table. The
// first row is the header row. Horizontal merges are expanded to empty
// cells so every row has the same width. Column alignment comes from cell
// justification, first row wins unless a later row is more specific.
func (c *markdownConverter) renderTable(t *tableXML) string {
	if len(t.Rows) == 0 {
		return ""
	}

	cellRenderer := c.forTableCell()

	var rows [][]string
	var aligns []string
	maxCols := 0

	for _, row := range t.Rows {
		var cells []string
		var rowAligns []string
		for _, cell := range row.Cells {
			var parts []string
			for i := range cell.Paragraphs {
				if md := cellRenderer.renderParagraph(&cell.Paragraphs[i]); md != "" {
					parts = append(parts, md)
				}
			}
			text := strings.ReplaceAll(strings.Join(parts, " "), "\n", " ")
			text = strings.ReplaceAll(text, "|", "\\|")

			align := cellAlignment(cell.Properties.Justification.Val)
			span := atoiDefault(cell.Properties.GridSpan.Val, 1)
			if span < 1 {
				span = 1
			}
			cells = append(cells, text)
			rowAligns = append(rowAligns, align)
			for i := 1; i < span; i++ {
				cells = append(cells, "")
				rowAligns = append(rowAligns, "left")
			}
		}
		// Rows without cells contribute nothing.
		if len(cells) == 0 {
			continue
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}

		if len(rows) == 0 {
			aligns = rowAligns
		} else {
			for i, a := range rowAligns {
				if i < len(aligns) && a != "left" {
					aligns[i] = a
				}
			}
		}
		rows = append(rows, cells)
	}

	if maxCols == 0 {
		return ""
	}
	for i := range rows {
		for len(rows[i]) < maxCols {
			rows[i] = append(rows[i], "")
		}
	}
	for len(aligns) < maxCols {
		aligns = append(aligns, "left")
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(rows[0], " | ") + " |\n")

	seps := make([]string, maxCols)
	for i, a := range aligns {
		switch a {
		case "center":
			seps[i] = ":---:"
		case "right":
			seps[i] = "---:"
		default:
			seps[i] = "---"
		}
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	for _, row := range rows[1:] {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	if note := alignmentComment(aligns); note != "" {
		b.WriteString(note)
	}

	return strings.TrimRight(b.String(), "\n")
}

// cellAlignment maps OOXML justification values to Markdown alignment
// names.
func cellAlignment(jc string) string {
	switch jc {
	case "center":
		return "center"
	case "right":
		return "right"
	case "both", "distribute":
		return "justify"
	default:
		return "left"
	}
}

// alignmentComment describes non-default column alignments. Markdown
// separators cannot express justified text, so the comment preserves it.
func alignmentComment(aligns []string) string {
	var notes []string
	for i, a := range aligns {
		if a != "left" {
			notes = append(notes, "col"+strconv.Itoa(i+1)+":"+a)
		}
	}
	if len(notes) == 0 {
		return ""
	}
	return "<!-- Table alignment: " + strings.Join(notes, ", ") + " -->\n"
}
