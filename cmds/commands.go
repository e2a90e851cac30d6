package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linode/linode-fsutil/cmds/options"
	"github.com/linode/linode-fsutil/pkg/fsutil"
)

// NewCmdEnsureDir returns the command that creates a directory if needed and
// prints its stat.
func NewCmdEnsureDir(cfg *options.Config, utils *fsutil.Utils) *cobra.Command {
	return &cobra.Command{
		Use:               "ensure-dir PATH",
		Short:             "Create PATH and any missing parents, then print its stat.",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := utils.EnsureDir(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("ensure directory %q: %w", args[0], err)
			}
			return cfg.Write(cmd.OutOrStdout(), dir)
		},
	}
}

// NewCmdStats returns the command that prints the statistics of the
// filesystem holding a path.
func NewCmdStats(cfg *options.Config, utils *fsutil.Utils) *cobra.Command {
	return &cobra.Command{
		Use:               "stats PATH",
		Short:             "Print statistics for the filesystem containing PATH.",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := utils.GetFsStats(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get filesystem stats for %q: %w", args[0], err)
			}
			return cfg.Write(cmd.OutOrStdout(), stats)
		},
	}
}

// NewCmdEnsureAndStat returns the command combining ensure-dir and stats.
func NewCmdEnsureAndStat(cfg *options.Config, utils *fsutil.Utils) *cobra.Command {
	return &cobra.Command{
		Use:               "ensure-and-stat PATH",
		Short:             "Create PATH if needed and print its stat with filesystem statistics.",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := utils.EnsureAndStat(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("ensure and stat %q: %w", args[0], err)
			}
			return cfg.Write(cmd.OutOrStdout(), dir)
		},
	}
}

// NewCmdVersion prints the version set at build time.
func NewCmdVersion(version string) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version.",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
