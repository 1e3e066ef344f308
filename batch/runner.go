package batch

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"

	"github.com/go-pixfit/pixfit/config"
	"github.com/go-pixfit/pixfit/log"
)

// Run discovers and processes every image under cfg.Source, strictly one
// file at a time, then prints the closing summary on stdout. The returned
// error covers discovery only; per-file failures are logged, tallied and
// moved past.
func Run(cfg *config.Config) (Stats, error) {
	var st Stats

	files, err := Discover(cfg.Source, cfg.Recursive, cfg.Include)
	if err != nil {
		return st, err
	}
	st.Total = len(files)
	if st.Total == 0 {
		fmt.Println("No images found.")
		return st, nil
	}

	log.Infow("starting",
		"images", st.Total,
		"source", cfg.Source,
		"output", cfg.Output,
		"size", cfg.Size,
		"mode", modeName(cfg),
		"dry-run", cfg.DryRun)

	for _, src := range files {
		r := processImage(cfg, src)
		st.Add(r)
		switch r.Status {
		case StatusFailed:
			log.Errorw("process failed", "file", r.Source, "err", r.Err)
		case StatusSkipped:
			log.Debugw("exists, not overwritten", "dest", r.Dest)
		case StatusSaved:
			log.Debugw("saved",
				"file", r.Source,
				"dest", r.Dest,
				"from", r.In,
				"to", r.Out,
				"in", humanize.IBytes(uint64(r.BytesIn)),
				"out", humanize.IBytes(uint64(r.BytesOut)))
		}
	}

	log.Infow("finished",
		"saved", st.Saved,
		"skipped", st.Skipped,
		"failed", st.Failed,
		"read", humanize.IBytes(uint64(st.BytesIn)),
		"written", humanize.IBytes(uint64(st.BytesOut)))

	fmt.Printf("Processed %d/%d images. Output: %s\n", st.Saved, st.Total, cfg.Output)
	return st, nil
}

func modeName(cfg *config.Config) string {
	if cfg.KeepAspect {
		return "contain"
	}
	return "exact"
}
