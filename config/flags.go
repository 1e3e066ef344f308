package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-pixfit/pixfit/image"
)

// ParseFlags layers command-line flags over c and stores the positional
// source directory. Paired flags resolve the way the help text promises:
// --keep-aspect beats --exact, each negation beats its positive. A preset
// applies before explicit flags, so flags always win over it.
func ParseFlags(c *Config, args []string) error {
	fs := flag.NewFlagSet("pixfit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(fs) }

	var (
		output  = fs.String("output", c.Output, "output directory")
		sizeArg = fs.String("size", c.Size.String(), "target size as WIDTHxHEIGHT")

		exact      = fs.Bool("exact", false, "force exact target dimensions, ignoring aspect ratio (default)")
		keepAspect = fs.Bool("keep-aspect", false, "fit within the target box, preserving aspect ratio")

		upscale   = fs.Bool("upscale", false, "enlarge images smaller than the target (default)")
		noUpscale = fs.Bool("no-upscale", false, "never enlarge images smaller than the target")

		ext    = fs.String("ext", c.OutExt, "convert every image to this format: jpg, png, gif, webp, bmp, tiff")
		suffix = fs.String("suffix", c.Suffix, `file name suffix; "_auto" expands to _WxH`)

		include     = fs.String("include", "", "comma-separated extension allow-list, e.g. jpg,png")
		recursive   = fs.Bool("recursive", false, "descend into subdirectories (default)")
		noRecursive = fs.Bool("no-recursive", false, "only take files directly inside the source directory")

		overwrite = fs.Bool("overwrite", false, "replace existing files in the output directory")
		quality   = fs.Int("quality", c.Quality, "quality for lossy formats, 1-100")

		pngOptimize   = fs.Bool("png-optimize", false, "extra PNG compression pass (default)")
		noPNGOptimize = fs.Bool("no-png-optimize", false, "default PNG compression only")

		strip    = fs.Bool("strip-metadata", false, "drop EXIF and other metadata (default)")
		preserve = fs.Bool("preserve-metadata", false, "keep what metadata the pixel copy can carry")

		preset = fs.String("preset", "", "apply a named preset, see --help for the list")
		orient = fs.Bool("auto-orient", false, "apply EXIF orientation before resizing")
		dryRun = fs.Bool("dry-run", false, "report what would happen without writing anything")

		verbose = fs.Bool("verbose", c.Verbose, "debug logging")
		version = fs.Bool("version", false, "print version and exit")
	)
	fs.BoolVar(verbose, "v", c.Verbose, "debug logging (shorthand)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Printf("pixfit %s\n", Version)
		os.Exit(0)
	}

	// Flags the user actually typed; only these may override a preset.
	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	if *preset != "" {
		if err := c.ApplyPreset(*preset); err != nil {
			return err
		}
	}

	if given["output"] {
		c.Output = *output
	}
	if given["size"] {
		s, err := image.ParseSize(*sizeArg)
		if err != nil {
			return err
		}
		c.Size = s
	}
	if given["keep-aspect"] && *keepAspect {
		c.KeepAspect = true
	} else if given["exact"] && *exact {
		c.KeepAspect = false
	}
	if given["no-upscale"] && *noUpscale {
		c.Upscale = false
	} else if given["upscale"] && *upscale {
		c.Upscale = true
	}
	if given["ext"] {
		c.OutExt = *ext
	}
	if given["suffix"] {
		c.Suffix = *suffix
	}
	if given["include"] {
		c.Include = strings.Split(*include, ",")
	}
	if given["no-recursive"] && *noRecursive {
		c.Recursive = false
	} else if given["recursive"] && *recursive {
		c.Recursive = true
	}
	if given["overwrite"] {
		c.Overwrite = *overwrite
	}
	if given["quality"] {
		c.Quality = *quality
	}
	if given["no-png-optimize"] && *noPNGOptimize {
		c.PNGOptimize = false
	} else if given["png-optimize"] && *pngOptimize {
		c.PNGOptimize = true
	}
	if given["preserve-metadata"] && *preserve {
		c.StripMeta = false
	} else if given["strip-metadata"] && *strip {
		c.StripMeta = true
	}
	if given["auto-orient"] {
		c.AutoOrient = *orient
	}
	if given["dry-run"] {
		c.DryRun = *dryRun
	}
	if *verbose {
		c.Verbose = true
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return fmt.Errorf("source directory required, see --help")
	case 1:
		c.Source = rest[0]
	default:
		return fmt.Errorf("expected one source directory, got %d arguments", len(rest))
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "pixfit %s - batch image resizer and converter\n\n", Version)
	fmt.Fprint(out, "Usage:\n  pixfit [options] <source-dir>\n\nOptions:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nPresets:\n  %s\n", strings.Join(PresetNames(activePresetFile()), ", "))
	fmt.Fprint(out, "\nEnvironment:\n  PIXFIT_OUTPUT, PIXFIT_QUALITY, PIXFIT_SUFFIX, PIXFIT_PRESETS, PIXFIT_DEBUG\n")
	fmt.Fprint(out, "\nExamples:\n")
	fmt.Fprint(out, "  pixfit ~/Pictures\n")
	fmt.Fprint(out, "  pixfit --keep-aspect --no-upscale --size 1600x1600 ~/Pictures\n")
	fmt.Fprint(out, "  pixfit --ext webp --quality 80 --suffix _web ./shoot\n")
}
