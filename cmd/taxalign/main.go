// Package main provides the CLI entrypoint for taxalign.
//
// taxalign aligns the synsets of a source lexical taxonomy to a target
// taxonomy by relaxation labeling:
//   - Generates candidates by translating lemmas through a dictionary
//   - Scores ambiguous candidates against hypernym/hyponym structure
//   - Promotes or narrows candidates round by round until a fixpoint
//
// Commands: align | check | suggest
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	// exitPartial means the alignment stopped before converging.
	exitPartial = 2
)

var errPartial = errors.New("alignment did not converge")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)

	stop()

	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, errPartial):
		os.Exit(exitPartial)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "taxalign",
		Short:         "Align synsets between two lexical taxonomies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd, logLevel)
			if err != nil {
				return err
			}

			slog.SetDefault(logger)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newAlignCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSuggestCmd())

	return root
}

// newLogger builds a text logger on the command's stderr.
func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
