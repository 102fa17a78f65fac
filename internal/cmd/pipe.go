package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/pinelog/core"
	"github.com/philipp01105/pinelog/logger"
)

func newPipeCmd(o *rootOptions) *cobra.Command {
	var (
		async bool
		level string
	)

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Log every line read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(level)
			if err != nil {
				return err
			}
			reg, err := o.open(cmd, async)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			defer reg.Close(ctx)

			if async {
				return pipeAsync(ctx, cmd.InOrStdin(), reg.NonBlocking(), lvl)
			}
			return pipeSync(cmd.InOrStdin(), reg.Sync(), lvl)
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "use the non-blocking logger")
	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "level of every line: INFO, WARN or ERROR")

	return cmd
}

func pipeSync(r io.Reader, l *logger.Logger, level core.Level) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := l.Log(level, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

// pipeAsync reads and logs on separate goroutines so a slow destination
// does not stall the reader beyond the channel's buffer.
func pipeAsync(ctx context.Context, r io.Reader, l *logger.AsyncLogger, level core.Level) error {
	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string, 64)

	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		for line := range lines {
			if err := l.Log(ctx, level, line); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
