package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// createTestDOCX creates a minimal DOCX file whose body holds the given
// content.
func createTestDOCX(t *testing.T, content string) string {
	t.Helper()
	return createTestDOCXParts(t, map[string]string{
		"word/document.xml": wrapDocument(content),
	})
}

// createTestDOCXParts creates a DOCX file from the given archive members,
// filling in the required package parts when absent.
func createTestDOCXParts(t *testing.T, parts map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "test.docx")

	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	if _, ok := parts["[Content_Types].xml"]; !ok {
		parts["[Content_Types].xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	}
	if _, ok := parts["_rels/.rels"]; !ok {
		parts["_rels/.rels"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	}
	if _, ok := parts["word/document.xml"]; !ok {
		parts["word/document.xml"] = wrapDocument("")
	}

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	zw.Close()
	f.Close()

	return docxPath
}

// wrapDocument wraps body content in a complete word/document.xml part.
func wrapDocument(content string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <w:body>` + content + `</w:body>
</w:document>`
}

func openTestDOCX(t *testing.T, parts map[string]string) *Reader {
	t.Helper()
	r, err := Open(createTestDOCXParts(t, parts))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestOpen(t *testing.T) {
	content := `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`
	docxPath := createTestDOCX(t, content)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if len(r.List()) == 0 {
		t.Error("List() should return archive members")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "invalid.docx")
	os.WriteFile(invalidPath, []byte("not a zip file"), 0644)

	_, err := Open(invalidPath)
	if err == nil {
		t.Error("Open() should return error for invalid ZIP")
	}
}

func TestOpen_MissingDocumentXML(t *testing.T) {
	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "missing.docx")

	f, _ := os.Create(docxPath)
	zw := zip.NewWriter(f)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	zw.Close()
	f.Close()

	_, err := Open(docxPath)
	if err == nil {
		t.Error("Open() should return error when document.xml is missing")
	}
}

func TestReader_Read(t *testing.T) {
	r := openTestDOCX(t, map[string]string{
		"word/document.xml": wrapDocument(`<w:p><w:r><w:t>x</w:t></w:r></w:p>`),
	})

	data, err := r.Read("word/document.xml")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Read() returned empty data")
	}

	if _, err := r.Read("word/nonexistent.xml"); err == nil {
		t.Error("Read() should return error for missing member")
	}
}

func TestReader_CloseIdempotent(t *testing.T) {
	docxPath := createTestDOCX(t, `<w:p><w:r><w:t>x</w:t></w:r></w:p>`)
	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNewReader(t *testing.T) {
	docxPath := createTestDOCX(t, `<w:p><w:r><w:t>in memory</w:t></w:r></w:p>`)
	data, err := os.ReadFile(docxPath)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "in memory" {
		t.Errorf("Text() = %q, want %q", text, "in memory")
	}
}
