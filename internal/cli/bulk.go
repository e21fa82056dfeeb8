package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/stdinlog/internal/reader"
)

// newBulkCommand creates the "bulk" subcommand that reads stdin to EOF and
// logs the whole payload as one record.
func newBulkCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk",
		Short: "Read standard input to EOF and log it as one payload",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBulk(opts)
		},
	}
}

// runBulk implements bulk mode: one unbounded read to EOF, one record with
// the byte count, one record with the delimited payload. A read failure is
// recorded to the sink and surfaced as a non-zero exit.
func runBulk(opts *Options) error {
	s := opts.openSink()
	defer func() { _ = s.Close() }()

	log := s.Logger
	log.Info("starting up, reading from stdin")

	payload, err := reader.ReadAll(opts.stdin())
	if err != nil {
		log.Error("an error occurred while reading or processing stdin", "error", err)
		return fmt.Errorf("read stdin: %w", err)
	}

	log.Info(fmt.Sprintf("read %d bytes from stdin, logging received data", payload.ByteCount))
	log.Info(fmt.Sprintf("received data:\n%s\n%s\n%s", payloadDelimiter, payload.Text, payloadDelimiter))

	log.Info("finished processing stdin, exiting")
	return nil
}
