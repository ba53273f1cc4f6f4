package hapdaglog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger. Its zero value logs nothing, so callers
// never need a nil check before using one.
type Logger struct {
	z zerolog.Logger
}

// Nop returns a Logger that discards everything written to it.
func Nop() Logger {
	return Logger{z: zerolog.Nop()}
}

// New returns a Logger writing JSON lines to w at the given level.
func New(w io.Writer, level zerolog.Level) Logger {
	return Logger{z: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Console returns a Logger writing human-readable lines to stderr, handy
// for a CLI's default output.
func Console(level zerolog.Level) Logger {
	return Logger{z: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()}
}

// With returns a child Logger carrying the given key/value pair on every
// subsequent event.
func (l Logger) With(key string, value interface{}) Logger {
	return Logger{z: l.z.With().Interface(key, value).Logger()}
}

// Debug starts a debug-level event, or a no-op if the underlying level
// filters it out.
func (l Logger) Debug() *zerolog.Event { return l.z.Debug() }

// Info starts an info-level event.
func (l Logger) Info() *zerolog.Event { return l.z.Info() }

// Warn starts a warn-level event.
func (l Logger) Warn() *zerolog.Event { return l.z.Warn() }

// Error starts an error-level event.
func (l Logger) Error() *zerolog.Event { return l.z.Error() }
