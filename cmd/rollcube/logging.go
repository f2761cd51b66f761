package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// openLogger builds the process logger. Without a log file, interactive
// commands discard logs so they never draw over the TUI.
func openLogger(path, level string, toStderr bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rollcube",
		Level:           lvl,
	})
	return logger, nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
