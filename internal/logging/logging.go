// Package logging builds the zerolog logger used by the currenttime command.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the log file.
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)

// Options selects the level and destinations of a logger.
type Options struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet restricts logging to warnings and errors.
	Quiet bool
	// File, if set, receives a copy of every entry in a rotating log file.
	File string
	// Console is where entries are written for the user. Defaults to
	// os.Stderr.
	Console io.Writer
}

// Level maps the verbosity flags to a zerolog level.
func Level(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger from opts. The returned close function releases the
// log file, if any, and is always safe to call. A log file that cannot be
// opened is reported through the returned error, but the logger still
// works, console-only.
func New(opts Options) (zerolog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writer := consoleWriter(console)
	closeFn := func() error { return nil }

	var fileErr error
	if opts.File != "" {
		fw, err := openFile(opts.File)
		if err != nil {
			fileErr = err
		} else {
			writer = zerolog.MultiLevelWriter(writer, fw)
			closeFn = fw.Close
		}
	}

	logger := zerolog.New(writer).
		Level(Level(opts.Verbose, opts.Quiet)).
		With().
		Timestamp().
		Logger()
	return logger, closeFn, fileErr
}

// consoleWriter uses a human-readable console writer on terminals unless
// NO_COLOR is set, and plain JSON otherwise.
func consoleWriter(w io.Writer) io.Writer {
	if IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}
	return w
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func openFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
	}, nil
}
