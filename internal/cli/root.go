// Package cli defines the command-line interface for stdinlog.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/stdinlog/internal/logging"
	"github.com/codex-k8s/stdinlog/internal/sink"
)

const (
	// logFileName is the fixed destination for log records. It is not
	// configurable at runtime.
	logFileName = "stdio_reader.log"

	// payloadDelimiter frames multi-line payloads inside a record.
	payloadDelimiter = "---"
)

// Options stores global CLI options plus the process streams the commands
// read from and fall back to. Tests inject their own streams and log path.
type Options struct {
	LogPath  string
	LogLevel logging.Level
	Stdin    io.Reader
	Stderr   io.Writer
}

// Execute builds the root command, runs it with the provided args, and
// returns any error.
func Execute(args []string) error {
	opts := &Options{
		LogPath:  logFileName,
		LogLevel: logging.LevelInfo,
		Stdin:    os.Stdin,
		Stderr:   os.Stderr,
	}

	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and
// subcommands. Without a subcommand the root runs bulk mode.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stdinlog",
		Short: "stdinlog records standard input into a log file",
		Long: "stdinlog is a diagnostic utility that reads standard input and appends what it " +
			"received to " + logFileName + ", falling back to stderr when the file cannot be " +
			"opened. Without a subcommand it runs in bulk mode.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.LogLevel = logging.ParseLevel(cmd.Flag("log-level").Value.String())
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBulk(opts)
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBulkCommand(opts),
		newStreamCommand(opts),
		newFramesCommand(opts),
	)

	return cmd
}

// openSink establishes the single log destination for this run.
func (o *Options) openSink() *sink.Sink {
	return sink.Open(o.LogPath, o.Stderr, o.LogLevel)
}

func (o *Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}
