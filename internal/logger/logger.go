package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel converts DEBUG, INFO, WARNING (or WARN) and ERROR to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (expected DEBUG|INFO|WARNING|ERROR)", s)
	}
}

// New builds the application logger writing to console and, if possible, to logFile.
// When the log file cannot be created the failure is logged and only the
// console is used. The returned function closes the log file.
func New(console io.Writer, level slog.Level, logFile string) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{Level: level}
	consoleLogger := slog.New(slog.NewTextHandler(console, opts))
	if logFile == "" {
		return consoleLogger, func() error { return nil }
	}

	file, err := openLogFile(logFile)
	if err != nil {
		consoleLogger.Error("log file creation failed", "path", logFile, "err", err)
		return consoleLogger, func() error { return nil }
	}

	w := io.MultiWriter(console, file)
	return slog.New(slog.NewTextHandler(w, opts)), file.Close
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
