package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	m := testGradient(8, 6)
	for _, f := range []Format{FormatJPEG, FormatPNG, FormatGIF, FormatWEBP, FormatBMP, FormatTIFF} {
		data := encodeBytes(t, m, f)
		assert.Equal(t, f, DetectFormat(data), "sniff %s", f)
	}
}

func TestDetectFormatUnknown(t *testing.T) {
	assert.Equal(t, FormatNone, DetectFormat(nil))
	assert.Equal(t, FormatNone, DetectFormat([]byte{}))
	assert.Equal(t, FormatNone, DetectFormat([]byte("certainly not pixels")))
	// A RIFF container that is not WebP, and one cut off before the fourcc.
	assert.Equal(t, FormatNone, DetectFormat([]byte("RIFF\x10\x00\x00\x00WAVE")))
	assert.Equal(t, FormatNone, DetectFormat([]byte("RIFF\x10\x00")))
}

func TestParseFormat(t *testing.T) {
	for token, want := range map[string]Format{
		"jpg":   FormatJPEG,
		"jpeg":  FormatJPEG,
		"JPG":   FormatJPEG,
		".jpeg": FormatJPEG,
		"png":   FormatPNG,
		".PNG":  FormatPNG,
		"gif":   FormatGIF,
		"webp":  FormatWEBP,
		"bmp":   FormatBMP,
		"tif":   FormatTIFF,
		"tiff":  FormatTIFF,
	} {
		got, err := ParseFormat(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "heic", "svg", "jpeg2000"} {
		_, err := ParseFormat(token)
		assert.Error(t, err, token)
	}
}

func TestFormatFromExt(t *testing.T) {
	assert.Equal(t, FormatJPEG, FormatFromExt(".jpg"))
	assert.Equal(t, FormatJPEG, FormatFromExt(".JPEG"))
	assert.Equal(t, FormatWEBP, FormatFromExt(".webp"))
	assert.Equal(t, FormatNone, FormatFromExt(".txt"))
	assert.Equal(t, FormatNone, FormatFromExt(""))
}

func TestFormatExtAndLossy(t *testing.T) {
	assert.Equal(t, ".jpg", FormatJPEG.Ext())
	assert.Equal(t, ".webp", FormatWEBP.Ext())
	assert.Equal(t, "", FormatNone.Ext())

	assert.True(t, FormatJPEG.Lossy())
	assert.True(t, FormatWEBP.Lossy())
	assert.False(t, FormatPNG.Lossy())
	assert.False(t, FormatGIF.Lossy())
	assert.False(t, FormatBMP.Lossy())
	assert.False(t, FormatTIFF.Lossy())
}
