package processor

// Source decoders beyond the ones imaging pulls in from the standard library.
import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)
