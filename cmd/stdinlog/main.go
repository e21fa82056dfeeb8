package main

import (
	"os"

	"github.com/codex-k8s/stdinlog/internal/cli"
	"github.com/codex-k8s/stdinlog/internal/logging"
)

// main is the entry point for the stdinlog binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
