package image

import (
	"errors"
)

var (
	// ErrFormat means the input bytes carry no known image signature or the
	// requested output format is not supported.
	ErrFormat = errors.New("invalid or unsupported image format")

	// ErrExists is returned by Save when the destination file already exists
	// and overwriting was not requested.
	ErrExists = errors.New("destination already exists")
)
