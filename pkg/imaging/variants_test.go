package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestVariantKey(t *testing.T) {
	spec := VariantSpec{Name: "thumb", Format: FormatAVIF}
	assert.Equal(t, "recipes/7/abc_thumb.avif", spec.VariantKey("recipes/7/abc.jpg"))

	spec = VariantSpec{Name: "large", Format: FormatWebP}
	assert.Equal(t, "recipes/7/abc_large.webp", spec.VariantKey("recipes/7/abc.jpg"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/avif", VariantSpec{Format: FormatAVIF}.ContentType())
	assert.Equal(t, "image/webp", VariantSpec{Format: FormatWebP}.ContentType())
}

func TestVariantsTable(t *testing.T) {
	require.Len(t, Variants, 8)

	byName := map[string]int{}
	for _, spec := range Variants {
		byName[spec.Name]++
	}
	// Each size is produced in both codecs.
	for name, count := range byName {
		assert.Equal(t, 2, count, name)
	}
}

func TestDeriveFillCrops(t *testing.T) {
	src := testImage(800, 400)
	spec := VariantSpec{Name: "thumb", Width: 250, Height: 250, Fit: FitFill, Format: FormatWebP, Quality: 80}

	data, err := Derive(src, spec)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestDeriveUnknownFormat(t *testing.T) {
	src := testImage(10, 10)
	_, err := Derive(src, VariantSpec{Name: "thumb", Width: 5, Height: 5, Format: Format("gif"), Quality: 80})
	assert.Error(t, err)
}

func TestDeriveAll(t *testing.T) {
	src := testImage(1600, 900)

	out, err := DeriveAll(src, "recipes/3/cover.jpg")
	require.NoError(t, err)
	require.Len(t, out, 8)

	for _, spec := range Variants {
		data, ok := out[spec.VariantKey("recipes/3/cover.jpg")]
		require.True(t, ok, spec.Name)
		assert.NotEmpty(t, data)
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(64, 48), nil))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	_, err = Decode([]byte("not an image"))
	assert.Error(t, err)
}
