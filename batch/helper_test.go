package batch

import (
	"bytes"
	stdimage "image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-pixfit/pixfit/config"
	"github.com/go-pixfit/pixfit/image"
)

func gradient(w, h int) *stdimage.NRGBA {
	m := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7),
				G: uint8(y * 13),
				B: uint8((x ^ y) * 3),
				A: 0xff,
			})
		}
	}
	return m
}

// writeImage drops a generated w-by-h image at name, creating directories
// as needed.
func writeImage(t *testing.T, name string, w, h int, f image.Format) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	var buf bytes.Buffer
	require.NoError(t, image.Encode(&buf, gradient(w, h), image.WriteOption{Format: f, Quality: 90}))
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0644))
}

func readSize(t *testing.T, name string) image.Size {
	t.Helper()
	_, attr, err := image.DecodeFile(name)
	require.NoError(t, err)
	return image.Size{Width: attr.Width, Height: attr.Height}
}

// testConfig builds the built-in defaults without consulting the
// environment, so tests stay hermetic.
func testConfig(src, out string) *config.Config {
	return &config.Config{
		Source:      src,
		Output:      out,
		Size:        image.Size{Width: 1280, Height: 1280},
		Upscale:     true,
		Suffix:      config.AutoSuffix,
		Recursive:   true,
		Quality:     85,
		PNGOptimize: true,
		StripMeta:   true,
	}
}

func relAll(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
