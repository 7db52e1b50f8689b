// Package cli wires the lithoprof solvers behind a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithoprof/config"
	"github.com/katalvlaran/lithoprof/internal/buildinfo"
	"github.com/katalvlaran/lithoprof/internal/logging"
	"github.com/katalvlaran/lithoprof/profile"
)

// app holds what the persistent flags resolve to.
type app struct {
	debug    bool
	jsonLogs bool
	logFile  string

	logger  *slog.Logger
	cleanup func() error
}

// Execute runs the command tree on os.Args and exits non-zero on error.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes args against a fresh command tree.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{logger: logging.Discard()}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if a.cleanup != nil {
		_ = a.cleanup()
	}

	return err
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lithoprof",
		Short:        "Continental geotherm and yield-strength envelope profiles",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, cleanup, err := logging.Setup(logging.Config{
				Debug:  a.debug,
				JSON:   a.jsonLogs,
				File:   a.logFile,
				Writer: cmd.ErrOrStderr(),
			})
			a.logger, a.cleanup = l, cleanup
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging with source locations")
	cmd.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "emit logs as JSON")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "append logs to this file instead of stderr")

	cmd.AddCommand(geothermCmd(a), envelopeCmd(a), terraneCmd(a))

	return cmd
}

// loadRun returns the reference run when path is empty.
func loadRun(path string) (config.Run, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// isStdout reports whether an output flag means standard output.
func isStdout(path string) bool {
	return path == "" || path == "-"
}

// writeProfile writes p as CSV to path, or to stdout when path is empty or "-".
func writeProfile(path string, p *profile.Profile, stdout io.Writer) (err error) {
	if isStdout(path) {
		return profile.WriteCSV(stdout, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := profile.WriteCSV(f, p); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// summaryWriter keeps human-readable output off stdout while a table is
// being streamed there.
func summaryWriter(cmd *cobra.Command, out string) io.Writer {
	if isStdout(out) {
		return cmd.ErrOrStderr()
	}

	return cmd.OutOrStdout()
}
