package cmds

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/linode/linode-fsutil/cmds/options"
	"github.com/linode/linode-fsutil/pkg/fsutil"
)

// NewRootCmd func
func NewRootCmd(version string, utils *fsutil.Utils) *cobra.Command {
	cfg := options.NewConfig()

	rootCmd := &cobra.Command{
		Use:               "linode-fsutil [command]",
		Short:             `Directory provisioning and filesystem space utility`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}
	cfg.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(NewCmdEnsureDir(cfg, utils))
	rootCmd.AddCommand(NewCmdStats(cfg, utils))
	rootCmd.AddCommand(NewCmdEnsureAndStat(cfg, utils))
	rootCmd.AddCommand(NewCmdVersion(version))

	return rootCmd
}
