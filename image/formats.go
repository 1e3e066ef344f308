package image

import (
	"fmt"
	"strings"
)

// Format identifies a raster codec supported by this package.
type Format uint8

const (
	FormatNone Format = iota
	FormatJPEG
	FormatPNG
	FormatGIF
	FormatWEBP
	FormatBMP
	FormatTIFF
)

// Magic prefixes used by DetectFormat. WebP needs the RIFF container
// check as well, see below.
const (
	sigJPEG   = "\xff\xd8\xff"
	sigPNG    = "\211PNG\r\n\032\n"
	sigGIF    = "GIF8"
	sigBMP    = "BM"
	sigTIFFLE = "II\x2a\x00"
	sigTIFFBE = "MM\x00\x2a"
	sigRIFF   = "RIFF"
	sigWEBP   = "WEBP"
)

// sniffLen is how many leading bytes DetectFormat needs; the longest
// signature is RIFF????WEBP at 12 bytes.
const sniffLen = 12

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatGIF:
		return "gif"
	case FormatWEBP:
		return "webp"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return "none"
}

// Ext returns the canonical dotted extension for f, or "" for FormatNone.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatGIF:
		return ".gif"
	case FormatWEBP:
		return ".webp"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	}
	return ""
}

// Lossy reports whether the encoder for f takes a quality parameter.
func (f Format) Lossy() bool {
	return f == FormatJPEG || f == FormatWEBP
}

// DetectFormat sniffs the leading bytes of an image stream. Returns
// FormatNone when no known signature matches.
func DetectFormat(data []byte) Format {
	s := string(data)
	switch {
	case strings.HasPrefix(s, sigJPEG):
		return FormatJPEG
	case strings.HasPrefix(s, sigPNG):
		return FormatPNG
	case strings.HasPrefix(s, sigGIF):
		return FormatGIF
	case strings.HasPrefix(s, sigTIFFLE), strings.HasPrefix(s, sigTIFFBE):
		return FormatTIFF
	case strings.HasPrefix(s, sigRIFF):
		if len(s) >= sniffLen && s[8:12] == sigWEBP {
			return FormatWEBP
		}
	case strings.HasPrefix(s, sigBMP):
		return FormatBMP
	}
	return FormatNone
}

// ParseFormat resolves a user-supplied format token ("webp", "JPG", ".png")
// to a Format. "jpg" and "jpeg" are the same format.
func ParseFormat(token string) (Format, error) {
	t := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(token), "."))
	switch t {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "gif":
		return FormatGIF, nil
	case "webp":
		return FormatWEBP, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return FormatNone, fmt.Errorf("unknown image format %q", token)
}

// FormatFromExt maps a dotted file extension to its Format, case-insensitive.
// Unknown extensions yield FormatNone.
func FormatFromExt(ext string) Format {
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatNone
	}
	return f
}
