// Package config holds the run configuration. Values layer in a fixed
// order, lowest to highest: built-in defaults, PIXFIT_* environment
// variables, a named preset, explicitly set command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/go-pixfit/pixfit/image"
	"github.com/go-pixfit/pixfit/log"
)

const Version = "0.3.1"

// EnvPrefix is the prefix of every environment variable read at startup.
const EnvPrefix = "pixfit"

// AutoSuffix is the sentinel suffix that expands to the resolved target
// size, e.g. "_1280x1280".
const AutoSuffix = "_auto"

// Settings are the environment overrides, each field one PIXFIT_* variable.
type Settings struct {
	Output  string `envconfig:"OUTPUT"`
	Quality int    `envconfig:"QUALITY"`
	Suffix  string `envconfig:"SUFFIX"`
	Presets string `envconfig:"PRESETS"` // path of a YAML preset file
	Debug   bool   `envconfig:"DEBUG"`
}

// Config describes one batch run. cmd hands a resolved Config to batch.Run
// and nothing mutates it afterwards.
type Config struct {
	Source string // source directory, the positional argument
	Output string // output root

	Size       image.Size
	KeepAspect bool // fit within the box instead of forcing exact dimensions
	Upscale    bool

	Suffix    string       // file-stem suffix; AutoSuffix expands on Resolve
	OutExt    string       // forced dotted extension, empty keeps the source's
	OutFormat image.Format // encoder behind OutExt, FormatNone = per-file

	Include   []string // extension allow-list, empty = built-in raster set
	Recursive bool

	Overwrite   bool
	Quality     int
	PNGOptimize bool
	StripMeta   bool
	AutoOrient  bool

	DryRun  bool
	Verbose bool

	presetFile string // PIXFIT_PRESETS or the probed user file, consumed by ApplyPreset
}

// Default returns the built-in configuration with environment overrides
// applied. Flags layer on top via ParseFlags.
func Default() Config {
	c := Config{
		Size:        image.Size{Width: 1280, Height: 1280},
		Upscale:     true,
		Suffix:      AutoSuffix,
		Recursive:   true,
		Quality:     image.DefaultQuality,
		PNGOptimize: true,
		StripMeta:   true,
		Output:      defaultOutput(),
	}

	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		log.Warnw("ignoring bad environment", "err", err)
	}
	if s.Output != "" {
		c.Output = s.Output
	}
	if s.Quality > 0 {
		c.Quality = s.Quality
	}
	if s.Suffix != "" {
		c.Suffix = s.Suffix
	}
	c.presetFile = s.Presets
	if c.presetFile == "" {
		c.presetFile = defaultPresetFile()
	}
	c.Verbose = s.Debug
	return c
}

// defaultOutput is a "resized" directory next to the executable, falling
// back to the working directory when the executable path is unknown.
func defaultOutput() string {
	exe, err := os.Executable()
	if err != nil {
		return "resized"
	}
	return filepath.Join(filepath.Dir(exe), "resized")
}

// Resolve normalizes the layered inputs: validates ranges, expands the auto
// suffix, binds the forced extension to an encoder, cleans the include list
// and makes both roots absolute. Call once, after flags and presets.
func (c *Config) Resolve() error {
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality %d out of range 1..100", c.Quality)
	}
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return fmt.Errorf("invalid target size %s", c.Size)
	}

	if c.Suffix == AutoSuffix {
		c.Suffix = fmt.Sprintf("_%dx%d", c.Size.Width, c.Size.Height)
	}

	if c.OutExt != "" {
		f, err := image.ParseFormat(c.OutExt)
		if err != nil {
			return fmt.Errorf("unsupported output format %q", c.OutExt)
		}
		c.OutFormat = f
		c.OutExt = "." + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.OutExt)), ".")
	}

	var include []string
	for _, e := range c.Include {
		e = strings.TrimLeft(strings.ToLower(strings.TrimSpace(e)), ".")
		if e == "" {
			continue
		}
		include = append(include, "."+e)
	}
	c.Include = include

	if abs, err := filepath.Abs(c.Source); err == nil && c.Source != "" {
		c.Source = abs
	}
	if abs, err := filepath.Abs(c.Output); err == nil {
		c.Output = abs
	}
	return nil
}

// OutputInsideSource reports whether the output root sits beneath the
// source tree. Not an error, but a second run would pick the results up
// as inputs, so the caller warns about it.
func (c *Config) OutputInsideSource() bool {
	rel, err := filepath.Rel(c.Source, c.Output)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
