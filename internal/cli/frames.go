package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/stdinlog/internal/reader"
)

// newFramesCommand creates the "frames" subcommand that reads Content-Length
// framed messages from stdin and logs each payload.
func newFramesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "Read Content-Length framed messages and log each payload",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFrames(opts)
		},
	}
}

// runFrames implements frame mode: one record per framed message payload.
// A disconnecting writer ends the loop cleanly; malformed framing is
// recorded and surfaced as a non-zero exit.
func runFrames(opts *Options) error {
	s := opts.openSink()
	defer func() { _ = s.Close() }()

	log := s.Logger
	log.Info("starting up, reading framed messages from stdin")

	br := bufio.NewReader(opts.stdin())
	for {
		payload, err := reader.ReadFrame(br)
		if err == io.EOF {
			log.Info("reached end of stdin, exiting")
			return nil
		}
		if err != nil {
			log.Error("an error occurred while reading a framed message", "error", err)
			return fmt.Errorf("read frame: %w", err)
		}

		log.Info(fmt.Sprintf("read message of %d bytes:\n%s\n%s\n%s",
			len(payload), payloadDelimiter, reader.Decode(payload), payloadDelimiter))
	}
}
