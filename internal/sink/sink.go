// Package sink selects the single log destination for a stdinlog run: the
// append-mode log file, or stderr when the file cannot be established.
package sink

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codex-k8s/stdinlog/internal/logging"
)

// Kind identifies which destination a Sink writes to.
type Kind int

const (
	// KindFile is the append-mode log file destination.
	KindFile Kind = iota
	// KindStderr is the fallback destination used when the file sink
	// cannot be established.
	KindStderr
)

// Sink is the single active log destination for a process run. It is
// created once at startup and owned by the command for the process
// lifetime.
type Sink struct {
	Logger *slog.Logger
	Kind   Kind

	file *os.File
}

// Open establishes the sink for path. It ensures the containing directory
// exists, then opens the file in append mode. If either step fails it
// installs a stderr sink instead and emits one error record noting the
// failure. Every branch installs the same record format; exactly one sink
// is active after Open returns.
func Open(path string, stderr io.Writer, level logging.Level) *Sink {
	if stderr == nil {
		stderr = os.Stderr
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "stdinlog: error creating log directory %s: %v\n", dir, err)
			logger := slog.New(logging.NewRecordHandler(stderr, level))
			logger.Error("could not create log directory, logging to stderr", "dir", dir, "error", err)
			return &Sink{Logger: logger, Kind: KindStderr}
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "stdinlog: error opening log file %s: %v\n", path, err)
		logger := slog.New(logging.NewRecordHandler(stderr, level))
		logger.Error("could not open log file, logging to stderr", "path", path, "error", err)
		return &Sink{Logger: logger, Kind: KindStderr}
	}

	return &Sink{
		Logger: slog.New(logging.NewRecordHandler(file, level)),
		Kind:   KindFile,
		file:   file,
	}
}

// Close releases the file handle when the file sink is active. Safe to call
// on a fallback sink.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
