// Package docxmark converts Word documents (.docx) to Markdown, plain text,
// or HTML.
//
// Basic usage:
//
//	md, err := docxmark.Open("report.docx").Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	md, err := docxmark.Open("report.docx").
//	    ImageDir("assets").
//	    Markdown()
//
// For advanced use cases, the lower-level docx package is also available.
package docxmark

import (
	"fmt"

	"github.com/docxmark/docxmark/docx"
	"github.com/docxmark/docxmark/format"
)

// Converter provides a fluent interface for converting a DOCX file.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	filename string

	reader       *docx.Reader
	ownsReader   bool
	readerOpened bool

	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a Converter for the named DOCX file. The file is not opened
// until a terminal operation runs. The returned Converter must be closed
// when done, either explicitly via Close() or implicitly by a terminal
// operation like Markdown().
//
// Example:
//
//	md, err := docxmark.Open("report.docx").Markdown()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter from an already-opened docx.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := docx.Open("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	md, err := docxmark.FromReader(r).Markdown()
func FromReader(r *docx.Reader) *Converter {
	return &Converter{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := docxmark.Must(docxmark.Open("report.docx").Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// clone creates a shallow copy of the Converter with a deep copy of options.
// This ensures immutability, each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		reader:       c.reader,
		ownsReader:   c.ownsReader,
		readerOpened: c.readerOpened,
		options:      c.options.clone(),
		err:          c.err,
	}
}

// ensureReader opens the reader if not already open.
func (c *Converter) ensureReader() error {
	if c.readerOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if f := format.Detect(c.filename); f != format.DOCX {
		return fmt.Errorf("unsupported file format: %s", f)
	}

	r, err := docx.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open DOCX: %w", err)
	}
	c.reader = r
	c.ownsReader = true
	c.readerOpened = true
	return nil
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsReader && c.reader != nil {
		err := c.reader.Close()
		c.reader = nil
		c.ownsReader = false
		return err
	}
	return nil
}

// ImageDir configures the converter to extract embedded images into dir
// and link to them from the Markdown output. When unset, image links point
// at the archive-internal media paths and nothing is written to disk.
//
// Example:
//
//	md, err := docxmark.Open("report.docx").ImageDir("assets").Markdown()
func (c *Converter) ImageDir(dir string) *Converter {
	newConv := c.clone()
	newConv.options.imageDir = dir
	return newConv
}

// Markdown converts the document and returns it as Markdown.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	md, err := docxmark.Open("report.docx").Markdown()
func (c *Converter) Markdown() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	if err := c.ensureReader(); err != nil {
		return "", err
	}
	defer c.Close()

	return c.reader.Markdown(docx.MarkdownOptions{ImageDir: c.options.imageDir})
}

// Text extracts and returns the plain text content of the document.
// When an image directory is configured, embedded images are extracted
// there as well. This is a terminal operation that closes the underlying
// reader.
//
// Example:
//
//	text, err := docxmark.Open("report.docx").Text()
func (c *Converter) Text() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	if err := c.ensureReader(); err != nil {
		return "", err
	}
	defer c.Close()

	if c.options.imageDir != "" {
		docx.ExtractImages(c.reader, c.options.imageDir)
	}
	return c.reader.Text()
}
