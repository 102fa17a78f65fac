package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/pinelog/core"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log stdin lines, reloading settings when the file changes",
		Long: `Like pipe, but the settings file given with --config is watched and
the logger is reconfigured each time it is saved. Invalid edits are
reported on stderr and the previous settings stay in force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configPath == "" {
				return errors.New("watch requires --config")
			}
			lvl, err := core.ParseLevel(level)
			if err != nil {
				return err
			}
			reg, err := o.open(cmd, false)
			if err != nil {
				return err
			}
			defer reg.Close(context.Background())

			ctx, cancel := context.WithCancel(commandContext(cmd))
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return reg.WatchSync(ctx, o.configPath)
			})
			g.Go(func() error {
				// End of input stops the watcher too.
				defer cancel()
				return pipeSync(cmd.InOrStdin(), reg.Sync(), lvl)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "level of every line: INFO, WARN or ERROR")

	return cmd
}
