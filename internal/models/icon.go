package models

import (
	"fmt"
	"time"
)

// IconSize is a target icon resolution. Icons are always stretched to it,
// the source aspect ratio is not preserved.
type IconSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Filename returns the output file name, e.g. icon-192x192.png.
func (s IconSize) Filename() string {
	return fmt.Sprintf("icon-%dx%d.%s", s.Width, s.Height, FormatPNG)
}

// DefaultIconSizes are the web app manifest icons produced on every run.
var DefaultIconSizes = []IconSize{
	{Width: 192, Height: 192},
	{Width: 512, Height: 512},
}

// GenerateRequest names the source image and the existing directory the
// icons are written to.
type GenerateRequest struct {
	SourcePath string `json:"source_path"`
	DestDir    string `json:"dest_dir"`
}

// GeneratedIcon describes one icon written to disk. URL is set only when the
// icon was also published.
type GeneratedIcon struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	FileSize  int64     `json:"file_size"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const FormatPNG = "png"
