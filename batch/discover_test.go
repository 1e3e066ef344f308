package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pixfit/pixfit/image"
)

func discoverTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "a.jpg"), 4, 4, image.FormatJPEG)
	writeImage(t, filepath.Join(root, "b.PNG"), 4, 4, image.FormatPNG)
	writeImage(t, filepath.Join(root, "sub", "c.webp"), 4, 4, image.FormatWEBP)
	writeImage(t, filepath.Join(root, "sub", "deeper", "d.gif"), 4, 4, image.FormatGIF)
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not pixels"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "README"), []byte("skip"), 0644))
	return root
}

func TestDiscoverRecursive(t *testing.T) {
	root := discoverTree(t)
	files, err := Discover(root, true, nil)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"a.jpg", "b.PNG", "sub/c.webp", "sub/deeper/d.gif"},
		relAll(t, root, files),
		"sorted, extension match is case-insensitive, non-images skipped")
}

func TestDiscoverFlat(t *testing.T) {
	root := discoverTree(t)
	files, err := Discover(root, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.PNG"}, relAll(t, root, files))
}

func TestDiscoverIncludeList(t *testing.T) {
	root := discoverTree(t)
	files, err := Discover(root, true, []string{".png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.PNG"}, relAll(t, root, files))

	files, err = Discover(root, true, []string{".jpg", ".gif"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "sub/deeper/d.gif"}, relAll(t, root, files))
}

func TestDiscoverEmpty(t *testing.T) {
	files, err := Discover(t.TempDir(), true, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"), false, nil)
	assert.Error(t, err)
}
