// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a copy of the default logger with prefix set. It takes the
// default's output, level and formatter at call time, so call it after Configure.
func New(prefix string) *log.Logger {
	return log.Default().WithPrefix(prefix)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       formatter,
	})
}

// NewFileWriter returns a size-rotated log file.
func NewFileWriter(path string, maxSizeMB, maxBackups int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
}

// Configure replaces the default logger. It writes text to stderr, leaving
// stdout to the IPC stream, or logfmt to a rotated file when file is set.
func Configure(level, file string, maxSizeMB, maxBackups int) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if file != "" {
		log.SetDefault(NewWithConfig(NewFileWriter(file, maxSizeMB, maxBackups), "", lvl, false, true, log.LogfmtFormatter))
		return nil
	}
	log.SetDefault(NewWithConfig(os.Stderr, "", lvl, false, true, log.TextFormatter))
	return nil
}
