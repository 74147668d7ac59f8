package docx

import (
	"strings"
	"testing"
)

func TestMarkdown_SimpleTable(t *testing.T) {
	content := `<w:tbl>
  <w:tr>
    <w:tc><w:p><w:r><w:t>H1</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>H2</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	md := markdownOf(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})

	want := "| H1 | H2 |\n| --- | --- |\n| a | b |"
	if md != want {
		t.Errorf("Markdown() = %q, want %q", md, want)
	}
}

func TestMarkdown_TableAlignment(t *testing.T) {
	content := `<w:tbl>
  <w:tr>
    <w:tc><w:tcPr><w:jc w:val="center"/></w:tcPr><w:p><w:r><w:t>C</w:t></w:r></w:p></w:tc>
    <w:tc><w:tcPr><w:jc w:val="right"/></w:tcPr><w:p><w:r><w:t>R</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>L</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>2</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>3</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	md := markdownOf(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})

	if !strings.Contains(md, "| :---: | ---: | --- |") {
		t.Errorf("missing alignment separators in %q", md)
	}
	if !strings.Contains(md, "<!-- Table alignment: col1:center, col2:right -->") {
		t.Errorf("missing alignment comment in %q", md)
	}
}

func TestMarkdown_TableGridSpan(t *testing.T) {
	content := `<w:tbl>
  <w:tr>
    <w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>wide</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>x</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>y</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	md := markdownOf(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})

	if !strings.Contains(md, "| wide |  |") {
		t.Errorf("merged cell should expand to empty trailing cell in %q", md)
	}
	if !strings.Contains(md, "| x | y |") {
		t.Errorf("missing data row in %q", md)
	}
}

func TestMarkdown_TableCellContent(t *testing.T) {
	// Cell paragraphs join with spaces, newlines collapse, pipes get
	// escaped, and lists render as plain text inside cells.
	numbering := testNumberingXML
	content := `<w:tbl>
  <w:tr>
    <w:tc>
      <w:p><w:r><w:t>first</w:t></w:r></w:p>
      <w:p><w:r><w:t>second</w:t></w:r></w:p>
    </w:tc>
    <w:tc>
      <w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="2"/></w:numPr></w:pPr><w:r><w:t>not a list</w:t></w:r></w:p>
    </w:tc>
    <w:tc><w:p><w:r><w:t>a|b</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	md := markdownOf(t, map[string]string{
		"word/document.xml":  wrapDocument(content),
		"word/numbering.xml": numbering,
	})

	if !strings.Contains(md, "| first second | not a list | a\\|b |") {
		t.Errorf("unexpected cell rendering in %q", md)
	}
}

func TestMarkdown_TableThenParagraph(t *testing.T) {
	content := `<w:tbl>
  <w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>after</w:t></w:r></w:p>`

	md := markdownOf(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})

	if !strings.HasSuffix(md, "after") {
		t.Errorf("paragraph after table missing in %q", md)
	}
	if strings.Index(md, "| cell |") > strings.Index(md, "after") {
		t.Errorf("table should precede paragraph in %q", md)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	c := &markdownConverter{rels: newRelationships()}
	if got := c.renderTable(&tableXML{}); got != "" {
		t.Errorf("renderTable(empty) = %q, want empty", got)
	}
	onlyEmptyRows := &tableXML{Rows: []tableRowXML{{}, {}}}
	if got := c.renderTable(onlyEmptyRows); got != "" {
		t.Errorf("renderTable(cell-less rows) = %q, want empty", got)
	}
}

func TestMarkdown_TableSkipsCellLessRows(t *testing.T) {
	content := `<w:tbl>
  <w:tr/>
  <w:tr>
    <w:tc><w:p><w:r><w:t>H1</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>H2</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr></w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`

	md := markdownOf(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})

	want := "| H1 | H2 |\n| --- | --- |\n| a | b |"
	if md != want {
		t.Errorf("Markdown() = %q, want %q", md, want)
	}
}

func TestCellAlignment(t *testing.T) {
	tests := []struct {
		jc   string
		want string
	}{
		{"center", "center"},
		{"right", "right"},
		{"both", "justify"},
		{"distribute", "justify"},
		{"left", "left"},
		{"", "left"},
		{"weird", "left"},
	}
	for _, tt := range tests {
		if got := cellAlignment(tt.jc); got != tt.want {
			t.Errorf("cellAlignment(%q) = %q, want %q", tt.jc, got, tt.want)
		}
	}
}
