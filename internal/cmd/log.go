package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/pinelog/core"
)

func newLogCmd(o *rootOptions) *cobra.Command {
	var (
		async bool
		level string
	)

	cmd := &cobra.Command{
		Use:   "log [flags] <message>...",
		Short: "Write one log line",
		Long: `Write the arguments, joined by spaces, as one log line.

Lines below the configured min_level are dropped silently.`,
		Args: cobra.MinimumNArgs(1),
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

			msg := strings.Join(args, " ")
			if async {
				return reg.NonBlocking().Log(ctx, lvl, msg)
			}
			return reg.Sync().Log(lvl, msg)
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "use the non-blocking logger")
	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "level of the line: INFO, WARN or ERROR")

	return cmd
}
