package label

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPNG(t *testing.T) {
	data, err := QRPNG("http://boxes.test/b/abc123", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 200, b.Dy())
}

func TestQRPNGMinimumSize(t *testing.T) {
	data, err := QRPNG("http://boxes.test/b/abc123", 1)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 80)
}

func TestLabelPNG(t *testing.T) {
	data, err := LabelPNG("Camping Gear", "http://boxes.test/b/abc123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, labelWidth, b.Dx())
	assert.Equal(t, labelHeight, b.Dy())

	// The composition is not a blank sheet: both black and white pixels exist.
	var dark, light int
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x4000 {
				dark++
			} else if r > 0xc000 {
				light++
			}
		}
	}
	assert.Positive(t, dark)
	assert.Positive(t, light)
}

func TestLabelPNGLongNameTruncated(t *testing.T) {
	long := "An Extremely Long Box Name That Cannot Fit On A Label"
	data, err := LabelPNG(long, "http://boxes.test/b/abc123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, labelWidth, img.Bounds().Dx())
}
