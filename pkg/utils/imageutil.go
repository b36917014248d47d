package utils

import (
	"path"
	"strings"

	"github.com/disintegration/imaging"
)

// GenerateStorageKey returns the bucket key for an icon. Keys are stable so
// publishing again replaces the previous icon.
func GenerateStorageKey(prefix, filename string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return filename
	}
	return path.Join(prefix, filename)
}

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// ContentTypeFor returns the MIME type for filename based on its extension,
// falling back to application/octet-stream.
func ContentTypeFor(filename string) string {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return "application/octet-stream"
	}
	return contentTypes[format]
}
