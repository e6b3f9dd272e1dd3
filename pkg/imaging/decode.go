package imaging

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// Decode reads a source image, honoring EXIF orientation.
func Decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}
