package image

import (
	"image"
	"image/draw"
)

// Strip copies pixel data into a freshly allocated container of the same
// color mode. The copy was never associated with the source file, so EXIF
// blocks, ICC profiles and text chunks held by the decoder do not travel
// with it to the encoder.
func Strip(m image.Image) image.Image {
	switch src := m.(type) {
	case *image.NRGBA:
		dst := image.NewNRGBA(src.Bounds())
		copyPix(dst.Pix, dst.Stride, src.Pix, src.Stride, src.Rect)
		return dst
	case *image.RGBA:
		dst := image.NewRGBA(src.Bounds())
		copyPix(dst.Pix, dst.Stride, src.Pix, src.Stride, src.Rect)
		return dst
	case *image.Gray:
		dst := image.NewGray(src.Bounds())
		copyPix(dst.Pix, dst.Stride, src.Pix, src.Stride, src.Rect)
		return dst
	default:
		// The pipeline normalizes before stripping, so this path only sees
		// full-color images in practice.
		b := m.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
		return dst
	}
}

func copyPix(dst []byte, dstStride int, src []byte, srcStride int, r image.Rectangle) {
	if dstStride == srcStride {
		copy(dst, src)
		return
	}
	// Fresh containers are tightly packed, each dst row is exactly dstStride
	// bytes. Source rows may be wider when m is a sub-image view.
	for y := 0; y < r.Dy(); y++ {
		copy(dst[y*dstStride:(y+1)*dstStride], src[y*srcStride:])
	}
}
