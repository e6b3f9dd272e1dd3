package imaging

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
)

type Format string

const (
	FormatAVIF Format = "avif"
	FormatWebP Format = "webp"
)

type Fit int

const (
	// FitFill crops to exactly Width x Height.
	FitFill Fit = iota
	// FitWidth resizes to Width preserving aspect ratio.
	FitWidth
)

// VariantSpec describes one derived rendition of a source image.
type VariantSpec struct {
	Name    string
	Width   int
	Height  int
	Fit     Fit
	Format  Format
	Quality int
}

// Variants is the full derivative set generated for every uploaded image:
// four sizes, each encoded in AVIF and WebP.
var Variants = []VariantSpec{
	{Name: "thumb", Width: 250, Height: 250, Fit: FitFill, Format: FormatAVIF, Quality: 80},
	{Name: "thumb", Width: 250, Height: 250, Fit: FitFill, Format: FormatWebP, Quality: 80},
	{Name: "small", Width: 320, Fit: FitWidth, Format: FormatAVIF, Quality: 80},
	{Name: "small", Width: 320, Fit: FitWidth, Format: FormatWebP, Quality: 80},
	{Name: "medium", Width: 768, Fit: FitWidth, Format: FormatAVIF, Quality: 82},
	{Name: "medium", Width: 768, Fit: FitWidth, Format: FormatWebP, Quality: 82},
	{Name: "large", Width: 1280, Fit: FitWidth, Format: FormatAVIF, Quality: 85},
	{Name: "large", Width: 1280, Fit: FitWidth, Format: FormatWebP, Quality: 85},
}

// VariantKey maps a base object key to the derived variant's key, e.g.
// recipes/hero/abc.jpg -> recipes/hero/abc_thumb.avif.
func (v VariantSpec) VariantKey(baseKey string) string {
	ext := path.Ext(baseKey)
	stem := strings.TrimSuffix(baseKey, ext)
	return fmt.Sprintf("%s_%s.%s", stem, v.Name, v.Format)
}

func (v VariantSpec) ContentType() string {
	return "image/" + string(v.Format)
}

func (v VariantSpec) resize(src image.Image) image.Image {
	if v.Fit == FitFill {
		return imaging.Fill(src, v.Width, v.Height, imaging.Center, imaging.Lanczos)
	}
	return imaging.Resize(src, v.Width, 0, imaging.Lanczos)
}

// Derive produces the encoded bytes for one variant of the source image.
func Derive(src image.Image, spec VariantSpec) ([]byte, error) {
	resized := spec.resize(src)

	var buf bytes.Buffer
	switch spec.Format {
	case FormatAVIF:
		if err := avif.Encode(&buf, resized, avif.Options{Quality: spec.Quality}); err != nil {
			return nil, err
		}
	case FormatWebP:
		if err := webp.Encode(&buf, resized, webp.Options{Quality: spec.Quality}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported image format %q", spec.Format)
	}
	return buf.Bytes(), nil
}

// DeriveAll generates every entry of Variants, keyed by the derived object
// key for the given base key.
func DeriveAll(src image.Image, baseKey string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(Variants))
	for _, spec := range Variants {
		data, err := Derive(src, spec)
		if err != nil {
			return nil, fmt.Errorf("derive %s/%s: %w", spec.Name, spec.Format, err)
		}
		out[spec.VariantKey(baseKey)] = data
	}
	return out, nil
}
