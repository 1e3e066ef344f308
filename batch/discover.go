// Package batch walks a source tree, pushes every image through the
// transform pipeline one at a time and totals the outcomes.
package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-pixfit/pixfit/log"
)

// DefaultExtensions is the raster set picked up when no include list
// narrows the scan.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tiff", ".gif"}

// Discover lists the image files under root, sorted for a stable run
// order. A non-recursive scan takes only files directly inside root.
// Extension matching is case-insensitive; an include list replaces the
// default set. Unreadable subtrees are skipped with a warning rather
// than aborting the scan.
func Discover(root string, recursive bool, include []string) ([]string, error) {
	allow := map[string]bool{}
	exts := include
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	for _, e := range exts {
		allow[strings.ToLower(e)] = true
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warnw("scan skipped", "path", path, "err", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if allow[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if allow[strings.ToLower(filepath.Ext(e.Name()))] {
				files = append(files, filepath.Join(root, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
