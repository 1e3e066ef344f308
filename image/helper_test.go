package image

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// testGradient builds a deterministic opaque full-color test image.
func testGradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 251),
				G: uint8(y * 239),
				B: uint8((x + y) * 31),
				A: 0xff,
			})
		}
	}
	return m
}

func encodeBytes(t *testing.T, m image.Image, f Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, m, WriteOption{Format: f, Quality: 90}); err != nil {
		t.Fatalf("encode %s: %v", f, err)
	}
	return buf.Bytes()
}
