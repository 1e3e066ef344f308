package batch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pixfit/pixfit/config"
	"github.com/go-pixfit/pixfit/image"
	"github.com/go-pixfit/pixfit/log"
)

// processImage runs one file through decode, normalize, orient, resize,
// strip and save. Every failure is caught here and lands in the Result;
// no single file stops the batch.
func processImage(cfg *config.Config, src string) Result {
	r := Result{Source: src, Status: StatusFailed}

	data, err := os.ReadFile(src)
	if err != nil {
		r.Err = err
		return r
	}

	m, attr, err := image.DecodeBytes(data)
	if err != nil {
		r.Err = err
		return r
	}
	r.In = image.Size{Width: attr.Width, Height: attr.Height}
	r.BytesIn = attr.Bytes
	if attr.Quality > 0 {
		log.Debugw("source quality", "file", src, "quality", attr.Quality)
	}

	m = image.Normalize(m)

	if cfg.AutoOrient {
		if o := image.ReadOrientation(bytes.NewReader(data)); o > 1 {
			log.Debugw("auto-orient", "file", src, "orientation", o)
			m = image.ApplyOrientation(m, o)
		}
	}

	if cfg.KeepAspect {
		if image.ShouldResize(image.SizeOf(m), cfg.Size, cfg.Upscale) {
			m = image.Contain(m, cfg.Size)
		}
	} else {
		m = image.Exact(m, cfg.Size)
	}

	if cfg.StripMeta {
		m = image.Strip(m)
	}

	dest, err := OutputPath(src, cfg.Source, cfg.Output, cfg.Suffix, cfg.OutExt)
	if err != nil {
		r.Err = err
		return r
	}
	r.Dest = dest
	r.Out = image.SizeOf(m)

	format := cfg.OutFormat
	if format == image.FormatNone {
		format = image.FormatFromExt(filepath.Ext(dest))
	}
	if format == image.FormatNone {
		r.Err = fmt.Errorf("%w: no encoder for %q", image.ErrFormat, filepath.Ext(dest))
		return r
	}

	// The overwrite check runs before the dry-run cut so a preview reports
	// the same skips a real run would.
	if !cfg.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			r.Status = StatusSkipped
			return r
		}
	}
	if cfg.DryRun {
		r.Status = StatusSaved
		return r
	}

	opt := image.WriteOption{Format: format, Quality: cfg.Quality, Optimize: cfg.PNGOptimize}
	if err = image.Save(dest, m, opt, cfg.Overwrite); err != nil {
		if errors.Is(err, image.ErrExists) {
			r.Status = StatusSkipped
			return r
		}
		r.Err = err
		return r
	}
	if fi, err := os.Stat(dest); err == nil {
		r.BytesOut = fi.Size()
	}
	r.Status = StatusSaved
	return r
}
