package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespaces used in DOCX parts.
const (
	nsW     = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgR  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsA     = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// Relationship type URIs.
const (
	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeChart     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
)

// nsMap maps the short prefixes used throughout WordprocessingML to their
// namespace URIs.
var nsMap = map[string]string{
	"w": nsW,
	"r": nsR,
}

// Qualify turns a prefixed tag name such as "w:p" into the xml.Name used for
// matching parsed nodes. It returns an error for unknown prefixes or names
// without a prefix.
func Qualify(tag string) (xml.Name, error) {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return xml.Name{}, fmt.Errorf("tag %q has no namespace prefix", tag)
	}
	uri, ok := nsMap[prefix]
	if !ok {
		return xml.Name{}, fmt.Errorf("unknown namespace prefix %q", prefix)
	}
	return xml.Name{Space: uri, Local: local}, nil
}

// mustQualify is Qualify for the fixed tag names compiled into this package.
func mustQualify(tag string) xml.Name {
	n, err := Qualify(tag)
	if err != nil {
		panic(err)
	}
	return n
}

// nameMatches reports whether a parsed element name matches a qualified name.
// Documents that omit namespace declarations parse with an empty Space, so an
// empty Space on the parsed side matches any expected namespace.
func nameMatches(got, want xml.Name) bool {
	if got.Local != want.Local {
		return false
	}
	return got.Space == want.Space || got.Space == ""
}
