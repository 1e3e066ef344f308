package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-pixfit/pixfit/image"
)

// Preset is a named bundle of option overrides. Zero-value fields leave the
// current setting alone; pointer fields distinguish unset from false.
type Preset struct {
	Size        string `yaml:"size"`
	Ext         string `yaml:"ext"`
	Quality     int    `yaml:"quality"`
	Suffix      string `yaml:"suffix"`
	KeepAspect  *bool  `yaml:"keep_aspect"`
	Upscale     *bool  `yaml:"upscale"`
	StripMeta   *bool  `yaml:"strip_metadata"`
	PNGOptimize *bool  `yaml:"png_optimize"`
}

func boolp(v bool) *bool { return &v }

// builtinPresets cover common delivery targets. A PIXFIT_PRESETS file can
// add to or shadow them by name.
var builtinPresets = map[string]Preset{
	"web": {
		Size:       "1920x1920",
		Ext:        "webp",
		Quality:    75,
		KeepAspect: boolp(true),
		Upscale:    boolp(false),
	},
	"print": {
		Size:       "3000x3000",
		Ext:        "jpg",
		Quality:    95,
		KeepAspect: boolp(true),
		Upscale:    boolp(false),
		StripMeta:  boolp(false),
	},
	"archive": {
		Size:        "4000x4000",
		Ext:         "png",
		KeepAspect:  boolp(true),
		Upscale:     boolp(false),
		StripMeta:   boolp(false),
		PNGOptimize: boolp(true),
	},
	"thumbnail": {
		Size:       "300x300",
		Ext:        "webp",
		Quality:    60,
		Suffix:     "_thumb",
		KeepAspect: boolp(true),
		Upscale:    boolp(false),
	},
}

// ApplyPreset overlays the named preset onto c. Presets from the user file
// shadow built-ins of the same name.
func (c *Config) ApplyPreset(name string) error {
	p, ok, err := lookupPreset(name, c.presetFile)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown preset %q, have: %s",
			name, strings.Join(PresetNames(c.presetFile), ", "))
	}

	if p.Size != "" {
		s, err := image.ParseSize(p.Size)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		c.Size = s
	}
	if p.Ext != "" {
		c.OutExt = p.Ext
	}
	if p.Quality > 0 {
		c.Quality = p.Quality
	}
	if p.Suffix != "" {
		c.Suffix = p.Suffix
	}
	if p.KeepAspect != nil {
		c.KeepAspect = *p.KeepAspect
	}
	if p.Upscale != nil {
		c.Upscale = *p.Upscale
	}
	if p.StripMeta != nil {
		c.StripMeta = *p.StripMeta
	}
	if p.PNGOptimize != nil {
		c.PNGOptimize = *p.PNGOptimize
	}
	return nil
}

// defaultPresetFile is the user preset file probed when PIXFIT_PRESETS is
// unset: pixfit/presets.yaml under the OS config directory. Empty when the
// file does not exist.
func defaultPresetFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	name := filepath.Join(dir, "pixfit", "presets.yaml")
	if _, err := os.Stat(name); err != nil {
		return ""
	}
	return name
}

// activePresetFile mirrors the resolution Default performs, for callers
// outside a Config such as the usage text.
func activePresetFile() string {
	if file := os.Getenv("PIXFIT_PRESETS"); file != "" {
		return file
	}
	return defaultPresetFile()
}

func lookupPreset(name, file string) (Preset, bool, error) {
	if file != "" {
		user, err := loadPresetFile(file)
		if err != nil {
			return Preset{}, false, err
		}
		if p, ok := user[name]; ok {
			return p, true, nil
		}
	}
	p, ok := builtinPresets[name]
	return p, ok, nil
}

// loadPresetFile reads a YAML map of preset name to overrides.
func loadPresetFile(name string) (map[string]Preset, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	out := map[string]Preset{}
	if err = yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("presets %s: %w", name, err)
	}
	return out, nil
}

// PresetNames lists the available presets, user file included, sorted.
func PresetNames(file string) []string {
	seen := map[string]bool{}
	for name := range builtinPresets {
		seen[name] = true
	}
	if file != "" {
		if user, err := loadPresetFile(file); err == nil {
			for name := range user {
				seen[name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
