package image

import (
	"image"
	"image/draw"
)

// Normalize converts decoded pixel data into a full-color image that every
// resampler and encoder here can consume. Grayscale, palette, YCbCr and CMYK
// sources become opaque NRGBA. Deep-color sources keep their alpha channel.
// Images already in NRGBA or RGBA pass through untouched.
//
// Palette transparency is dropped on purpose: a palette source is treated as
// a palette of colors, the same way converting such an image to plain RGB
// would.
func Normalize(m image.Image) image.Image {
	switch m.(type) {
	case *image.NRGBA, *image.RGBA:
		return m
	case *image.NRGBA64, *image.RGBA64:
		return toNRGBA(m, false)
	default:
		// Gray, Gray16, Paletted, YCbCr, CMYK and anything exotic.
		return toNRGBA(m, true)
	}
}

func toNRGBA(m image.Image, opaque bool) *image.NRGBA {
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	if opaque {
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 0xff
		}
	}
	return dst
}
