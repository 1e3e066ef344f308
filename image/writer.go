package image

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the lossy-encoder quality used when a WriteOption
// carries none.
const DefaultQuality = 85

// WriteOption controls encoding.
type WriteOption struct {
	Format   Format
	Quality  int  // 1..100, lossy formats only
	Optimize bool // heavier compression, PNG only
}

func (o WriteOption) quality() int {
	if o.Quality < 1 || o.Quality > 100 {
		return DefaultQuality
	}
	return o.Quality
}

// Encode writes m to w in the requested format. Quality applies only to
// lossy formats, Optimize only to PNG; both are ignored elsewhere.
func Encode(w io.Writer, m image.Image, opt WriteOption) error {
	switch opt.Format {
	case FormatJPEG:
		return jpeg.Encode(w, m, &jpeg.Options{Quality: opt.quality()})
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		if opt.Optimize {
			enc.CompressionLevel = png.BestCompression
		}
		return enc.Encode(w, m)
	case FormatGIF:
		return gif.Encode(w, m, nil)
	case FormatWEBP:
		return webp.Encode(w, m, &webp.Options{Quality: float32(opt.quality())})
	case FormatBMP:
		return bmp.Encode(w, m)
	case FormatTIFF:
		return tiff.Encode(w, m, nil)
	}
	return fmt.Errorf("%w: cannot encode %q", ErrFormat, opt.Format.String())
}

// Save encodes m into the file at name, creating missing directories on the
// way. When the file exists and overwrite is false, Save touches nothing and
// returns ErrExists. A failed encode removes the partial file.
func Save(name string, m image.Image, opt WriteOption, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(name); err == nil {
			return ErrExists
		}
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err = Encode(f, m, opt); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}
