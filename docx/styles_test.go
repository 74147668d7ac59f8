package docx

import "testing"

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="MyHead">
    <w:name w:val="heading 2"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Derived">
    <w:name w:val="Fancy"/>
    <w:basedOn w:val="MyHead"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="BigTitle">
    <w:name w:val="Title"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
</w:styles>`

func TestParseStyles(t *testing.T) {
	table, err := parseStyles([]byte(testStylesXML))
	if err != nil {
		t.Fatalf("parseStyles() error = %v", err)
	}

	if info := table["MyHead"]; !info.IsHeading || info.HeadingLevel != 2 {
		t.Errorf("MyHead = %+v, want heading level 2", info)
	}
	if info := table["Derived"]; !info.IsHeading || info.HeadingLevel != 2 {
		t.Errorf("Derived = %+v, want inherited heading level 2", info)
	}
	if info := table["BigTitle"]; !info.IsHeading || info.HeadingLevel != 1 {
		t.Errorf("BigTitle = %+v, want heading level 1", info)
	}
	if info := table["Normal"]; info.IsHeading {
		t.Errorf("Normal = %+v, want non-heading", info)
	}
}

func TestHeadingLevel_PatternMatch(t *testing.T) {
	// Pattern matching works without any style table at all.
	var table StyleTable

	tests := []struct {
		styleID string
		want    int
	}{
		{"Heading1", 1},
		{"heading3", 3},
		{"Heading 4", 4},
		{"h2", 2},
		{"Title", 1},
		{"Subtitle", 1},
		{"BodyText", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := table.HeadingLevel(tt.styleID); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.styleID, got, tt.want)
		}
	}
}

func TestHeadingLevel_PatternBeatsTable(t *testing.T) {
	// A raw ID matching the heading pattern wins over the table entry.
	table := StyleTable{
		"Heading2": {Name: "Something Else", IsHeading: false},
	}
	if got := table.HeadingLevel("Heading2"); got != 2 {
		t.Errorf("HeadingLevel(Heading2) = %d, want 2", got)
	}
}

func TestHeadingLevel_BasedOnChain(t *testing.T) {
	table := StyleTable{
		"Leaf":   {Name: "Leaf", BasedOn: "Mid"},
		"Mid":    {Name: "Mid", BasedOn: "Root"},
		"Root":   {Name: "heading 3", IsHeading: true, HeadingLevel: 3},
		"CycleA": {Name: "A", BasedOn: "CycleB"},
		"CycleB": {Name: "B", BasedOn: "CycleA"},
	}

	if got := table.HeadingLevel("Leaf"); got != 3 {
		t.Errorf("HeadingLevel(Leaf) = %d, want 3", got)
	}
	if got := table.HeadingLevel("CycleA"); got != 0 {
		t.Errorf("HeadingLevel(CycleA) = %d, want 0 for cycle", got)
	}
}

func TestHeadingLevel_DepthCap(t *testing.T) {
	// A chain deeper than the cap resolves as a non-heading.
	table := StyleTable{
		"s0":  {BasedOn: "s1"},
		"s1":  {BasedOn: "s2"},
		"s2":  {BasedOn: "s3"},
		"s3":  {BasedOn: "s4"},
		"s4":  {BasedOn: "s5"},
		"s5":  {BasedOn: "s6"},
		"s6":  {BasedOn: "s7"},
		"s7":  {BasedOn: "s8"},
		"s8":  {BasedOn: "s9"},
		"s9":  {BasedOn: "s10"},
		"s10": {Name: "heading 1", IsHeading: true, HeadingLevel: 1},
	}
	if got := table.HeadingLevel("s0"); got != 0 {
		t.Errorf("HeadingLevel(s0) = %d, want 0 past depth cap", got)
	}
}

func TestParseStyles_Malformed(t *testing.T) {
	if _, err := parseStyles([]byte("<not-closed")); err == nil {
		t.Error("parseStyles() should return error for malformed XML")
	}
}
