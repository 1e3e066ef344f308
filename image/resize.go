package image

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode"

	"github.com/nfnt/resize"
)

// Size is a pixel box, either the dimensions of an image or a resize target.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SizeOf returns the pixel dimensions of m.
func SizeOf(m image.Image) Size {
	b := m.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// ParseSize parses a "WIDTHxHEIGHT" pair. The separator may be an x or a
// comma, case does not matter: 1280x720, 1280X720 and 1280,720 all parse
// the same. Both numbers must be positive.
func ParseSize(text string) (Size, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	fields := strings.FieldsFunc(t, func(r rune) bool {
		return r == 'x' || r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return Size{}, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT like 1280x1280", text)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT like 1280x1280", text)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT like 1280x1280", text)
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("invalid size %q, dimensions must be positive", text)
	}
	return Size{Width: w, Height: h}, nil
}

// ShouldResize reports whether an image of size cur gets resampled at all.
// With upscaling disabled, an image already inside the target box stays
// as it is. Only the aspect-preserving mode consults this; exact mode
// resizes unconditionally.
func ShouldResize(cur, target Size, upscale bool) bool {
	if !upscale && cur.Width <= target.Width && cur.Height <= target.Height {
		return false
	}
	return true
}

// ContainSize computes the largest size that fits inside box while keeping
// the aspect ratio of cur. The bound dimension lands exactly on the box,
// the free one is rounded half up and never exceeds it.
func ContainSize(cur, box Size) Size {
	if cur.Width <= 0 || cur.Height <= 0 {
		return cur
	}
	w, h := int64(cur.Width), int64(cur.Height)
	bw, bh := int64(box.Width), int64(box.Height)

	var nw, nh int64
	if w*bh >= h*bw {
		// Source is at least as wide as the box, width binds.
		nw = bw
		nh = (2*h*bw + w) / (2 * w)
	} else {
		nh = bh
		nw = (2*w*bh + h) / (2 * h)
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return Size{Width: int(nw), Height: int(nh)}
}

// Contain scales m to fit entirely within target, keeping aspect ratio.
// Scaling goes both directions, so a small source grows to meet the box;
// gate with ShouldResize to forbid that.
func Contain(m image.Image, target Size) image.Image {
	b := m.Bounds()
	fit := ContainSize(Size{Width: b.Dx(), Height: b.Dy()}, target)
	if fit.Width == b.Dx() && fit.Height == b.Dy() {
		return m
	}
	return scale(m, fit)
}

// Exact forces m to exactly the target dimensions, ignoring aspect ratio.
func Exact(m image.Image, target Size) image.Image {
	return scale(m, target)
}

func scale(m image.Image, to Size) image.Image {
	return resize.Resize(uint(to.Width), uint(to.Height), m, resize.Lanczos3)
}
