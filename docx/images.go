package docx

import (
	"bytes"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// ExtractedImage describes one image member written to disk.
type ExtractedImage struct {
	// Member is the archive path of the image, e.g. word/media/image1.png.
	Member string

	// Path is the file it was written to.
	Path string

	// Width and Height are pixel dimensions, zero when the image could
	// not be decoded.
	Width  int
	Height int
}

// ExtractImages writes every archive member with a known image extension to
// dir and reports what was written. Most images live under word/media/, but
// any member with an image extension qualifies. Members that cannot be read
// or written are skipped; an undecodable image is still written, with zero
// dimensions.
func ExtractImages(r *Reader, dir string) []ExtractedImage {
	var extracted []ExtractedImage

	for _, name := range r.List() {
		if !imageExtensions[strings.ToLower(path.Ext(name))] {
			continue
		}

		data, err := r.Read(name)
		if err != nil {
			continue
		}

		dest := filepath.Join(dir, path.Base(name))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			continue
		}

		img := ExtractedImage{Member: name, Path: dest}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			img.Width = cfg.Width
			img.Height = cfg.Height
		}
		extracted = append(extracted, img)
	}

	return extracted
}
