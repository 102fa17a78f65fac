package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipp01105/pinelog/config"
	"github.com/philipp01105/pinelog/core"
)

const defaultSettingsFile = "pinelog.toml"

func newConfigCmd(o *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create pinelog settings",
	}

	configCmd.AddCommand(newConfigShowCmd(o))
	configCmd.AddCommand(newConfigInitCmd())

	return configCmd
}

func newConfigShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings, environment overrides applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := o.record()
			if err != nil {
				return err
			}
			data, err := config.Marshal(rec)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var (
		force     bool
		level     string
		filePath  string
		timestamp string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file",
		Long:  `Write a settings file (default: ` + defaultSettingsFile + `) with the given values.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSettingsFile
			if len(args) == 1 {
				path = args[0]
			}

			rec, err := config.Settings{MinLevel: level, FilePath: filePath, Timestamp: timestamp}.Record()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			if err := config.Write(path, rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&level, "min-level", core.InfoLevel.String(), "min_level to write")
	cmd.Flags().StringVar(&filePath, "file-path", "", "file_path to write")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "timestamp to write: DATE, TIME or FULL")

	return cmd
}
