package image

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/liut/jpegquality"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-pixfit/pixfit/log"
)

// Decode reads the whole stream, sniffs the format from its leading bytes
// and decodes with the matching codec. The file extension plays no part in
// codec selection, so a PNG named photo.jpg still decodes as PNG.
func Decode(r io.Reader) (image.Image, *Attr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return DecodeBytes(data)
}

// DecodeFile decodes the image file at name. See Decode.
func DecodeFile(name string) (image.Image, *Attr, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an in-memory image and reports its attributes.
func DecodeBytes(data []byte) (image.Image, *Attr, error) {
	f := DetectFormat(data)
	if f == FormatNone {
		return nil, nil, fmt.Errorf("%w: no known signature", ErrFormat)
	}

	var (
		m   image.Image
		err error
	)
	br := bytes.NewReader(data)
	switch f {
	case FormatJPEG:
		m, err = jpeg.Decode(br)
	case FormatPNG:
		m, err = png.Decode(br)
	case FormatGIF:
		m, err = gif.Decode(br)
	case FormatWEBP:
		m, err = webp.Decode(br)
	case FormatBMP:
		m, err = bmp.Decode(br)
	case FormatTIFF:
		m, err = tiff.Decode(br)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", f, err)
	}

	b := m.Bounds()
	attr := &Attr{
		Width:  b.Dx(),
		Height: b.Dy(),
		Bytes:  int64(len(data)),
		Format: f,
	}
	if f == FormatJPEG {
		if jq, err := jpegquality.NewWithBytes(data); err == nil {
			attr.Quality = jq.Quality()
		} else {
			log.Debugw("jpeg quality estimate failed", "err", err)
		}
	}
	return m, attr, nil
}
