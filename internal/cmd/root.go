// Package cmd implements the pinelog command line tool.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/formatter"
	"github.com/philipp01105/pinelog/internal/diag"
	"github.com/philipp01105/pinelog/logger"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "pinelog",
		Short: "Leveled console and file logging from the command line",
		Long: `pinelog writes leveled log lines to the console and, when a settings
file names one, appends them to a log file.

Settings come from a TOML file (--config) with min_level, file_path and
timestamp keys. PINELOG_MIN_LEVEL, PINELOG_FILE_PATH and PINELOG_TIMESTAMP
override the file.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "settings file (default: settings from the environment)")
	rootCmd.PersistentFlags().String("color", "auto", "console colors: auto, always or never")

	o.v.SetEnvPrefix(config.EnvPrefix)
	_ = o.v.BindEnv("color")
	_ = o.v.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))

	rootCmd.AddCommand(newLogCmd(o))
	rootCmd.AddCommand(newPipeCmd(o))
	rootCmd.AddCommand(newWatchCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// record resolves the logger configuration from --config or the environment.
func (o *rootOptions) record() (config.Record, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}
	return config.FromEnv()
}

// registry creates a registry writing to the command's output streams.
func (o *rootOptions) registry(cmd *cobra.Command) (*logger.Registry, error) {
	mode, err := formatter.ParseColorMode(o.v.GetString("color"))
	if err != nil {
		return nil, fmt.Errorf("invalid --color: %w", err)
	}
	return logger.NewRegistry(
		logger.WithConsole(cmd.OutOrStdout()),
		logger.WithColor(mode),
		logger.WithDiagnostics(diag.New(cmd.ErrOrStderr())),
	), nil
}

// open builds a registry and initializes the slot for the requested mode.
func (o *rootOptions) open(cmd *cobra.Command, async bool) (*logger.Registry, error) {
	rec, err := o.record()
	if err != nil {
		return nil, err
	}
	reg, err := o.registry(cmd)
	if err != nil {
		return nil, err
	}
	if async {
		err = reg.InitNonBlocking(commandContext(cmd), rec)
	} else {
		err = reg.InitSync(rec)
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
