package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/stdinlog/internal/reader"
)

// newStreamCommand creates the "stream" subcommand that logs stdin one line
// at a time.
func newStreamCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Read standard input line by line and log each line",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStream(opts)
		},
	}
}

// runStream implements streaming mode: one record per line, terminators
// stripped, in input order. Read failures are not recovered: they propagate
// without a completion record. There is no timeout while waiting for the
// next line.
func runStream(opts *Options) error {
	s := opts.openSink()
	defer func() { _ = s.Close() }()

	log := s.Logger
	log.Info("starting up, streaming lines from stdin")

	for line, err := range reader.Lines(opts.stdin()) {
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		log.Info(line)
	}

	log.Info("reached end of stdin, exiting")
	return nil
}
