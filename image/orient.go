package image

import (
	"image"
	"io"

	"github.com/rwcarlsen/goexif/exif"
)

// ReadOrientation returns the EXIF orientation of the stream, a value in
// 1..8. Streams without a usable EXIF block report 1, the identity.
func ReadOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// ApplyOrientation bakes an EXIF orientation into the pixels, returning an
// image that displays upright with orientation 1. Values 5..8 swap width
// and height. Out-of-range values return m unchanged.
func ApplyOrientation(m image.Image, orientation int) image.Image {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.NRGBA
	// Maps destination coordinates back to source coordinates.
	var src func(x, y int) (int, int)

	switch orientation {
	case 2: // mirrored horizontally
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		src = func(x, y int) (int, int) { return w - 1 - x, y }
	case 3: // rotated 180
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		src = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4: // mirrored vertically
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		src = func(x, y int) (int, int) { return x, h - 1 - y }
	case 5: // mirrored along top-left diagonal
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		src = func(x, y int) (int, int) { return y, x }
	case 6: // rotated 90 counter-clockwise in the file, rotate clockwise to fix
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		src = func(x, y int) (int, int) { return y, h - 1 - x }
	case 7: // mirrored along bottom-left diagonal
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		src = func(x, y int) (int, int) { return w - 1 - y, h - 1 - x }
	case 8: // rotated 90 clockwise in the file, rotate counter-clockwise to fix
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		src = func(x, y int) (int, int) { return w - 1 - y, x }
	default:
		return m
	}

	db := dst.Bounds()
	for y := db.Min.Y; y < db.Max.Y; y++ {
		for x := db.Min.X; x < db.Max.X; x++ {
			sx, sy := src(x, y)
			dst.Set(x, y, m.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}
