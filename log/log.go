// Package log is a thin structured-logging facade. The default backend writes
// through log/slog; cmd.Main swaps in a zap SugaredLogger at startup via Set.
package log

import (
	"log/slog"
	"os"
)

// Logger is the sugared key/value interface every package logs through.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

var current Logger = &slogger{}

// Set replaces the active backend. Nil is ignored.
func Set(l Logger) {
	if l != nil {
		current = l
	}
}

// Get returns the active backend.
func Get() Logger {
	return current
}

func Debugw(msg string, keysAndValues ...any) { current.Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { current.Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...any)  { current.Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...any) { current.Errorw(msg, keysAndValues...) }
func Fatalw(msg string, keysAndValues ...any) { current.Fatalw(msg, keysAndValues...) }

type slogger struct{}

func (s *slogger) Debugw(msg string, keysAndValues ...any) { slog.Debug(msg, keysAndValues...) }
func (s *slogger) Infow(msg string, keysAndValues ...any)  { slog.Info(msg, keysAndValues...) }
func (s *slogger) Warnw(msg string, keysAndValues ...any)  { slog.Warn(msg, keysAndValues...) }
func (s *slogger) Errorw(msg string, keysAndValues ...any) { slog.Error(msg, keysAndValues...) }

func (s *slogger) Fatalw(msg string, keysAndValues ...any) {
	slog.Error(msg, keysAndValues...)
	os.Exit(1)
}
