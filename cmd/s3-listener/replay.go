package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Sokol111/s3-listener/pkg/listener"
	"github.com/spf13/cobra"
)

type replayFlags struct {
	file string
}

func newReplayCmd(flags *rootFlags) *cobra.Command {
	cfg := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Dispatch a notification read from a file",
		Long: `Dispatch one S3 notification document with the built-in object logger and print
the outcome. Use "-" to read the document from stdin.

Example:
  s3-listener replay --file ./testdata/notification.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), flags, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&cfg.file, "file", "f", "", "Notification JSON file, - for stdin (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReplay(ctx context.Context, flags *rootFlags, cfg *replayFlags, stdin io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := readNotification(cfg.file, stdin)
	if err != nil {
		return err
	}

	svc, err := startService(ctx, flags)
	if err != nil {
		return err
	}

	dispatchErr := svc.handle(ctx, raw)
	stopErr := svc.stop(context.Background())

	printOutcome(out, dispatchErr)
	return errors.Join(dispatchErr, stopErr)
}

func readNotification(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read notification from stdin: %w", err)
		}
		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification file: %w", err)
	}
	return raw, nil
}

func printOutcome(out io.Writer, err error) {
	if err == nil {
		_, _ = fmt.Fprintln(out, "succeeded")
		return
	}
	code, ok := listener.CodeOf(err)
	if !ok {
		code = listener.CodeInternalError
	}
	_, _ = fmt.Fprintf(out, "failed: %s (code %d): %v\n", code, int(code), err)
}
