package docxmark

// ConvertOptions holds configuration for document conversion.
type ConvertOptions struct {
	// imageDir is where extracted images are written; empty means no
	// extraction.
	imageDir string
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		imageDir: "",
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		imageDir: o.imageDir,
	}
}
