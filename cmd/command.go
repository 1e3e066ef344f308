// Package cmd is the command-line entry for pixfit: it layers the
// configuration, wires zap into the log facade and drives the batch run.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-pixfit/pixfit/batch"
	"github.com/go-pixfit/pixfit/config"
	zlog "github.com/go-pixfit/pixfit/log"
)

// Exit codes shell callers can test for. Option and usage errors exit 1;
// a missing or unusable source directory exits 2.
const (
	exitOK     = 0
	exitUsage  = 1
	exitSource = 2
)

func Main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Default()
	if err := config.ParseFlags(&cfg, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "pixfit: %v\n", err)
		return exitUsage
	}
	if err := cfg.Resolve(); err != nil {
		fmt.Fprintf(os.Stderr, "pixfit: %v\n", err)
		return exitUsage
	}

	logger := buildLogger(cfg.Verbose)
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()
	zlog.Set(sugar)

	fi, err := os.Stat(cfg.Source)
	if err != nil || !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Source folder not found: %s\n", cfg.Source)
		return exitSource
	}
	if cfg.OutputInsideSource() {
		zlog.Warnw("output directory lies inside the source tree, a second run would pick its files up",
			"source", cfg.Source, "output", cfg.Output)
	}
	if !cfg.DryRun {
		if err = os.MkdirAll(cfg.Output, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "pixfit: cannot create output directory: %v\n", err)
			return exitSource
		}
	}

	if _, err = batch.Run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pixfit: %v\n", err)
		return exitSource
	}
	return exitOK
}

func buildLogger(verbose bool) *zap.Logger {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.DisableStacktrace = true
	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
