package colorvpcmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/config"
)

func newConfigCmd(root *colorvpCommander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist the resolved configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Encode(cmd.OutOrStdout(), root.cfg)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration to colorvp.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path(root.configDir)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%v already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, root.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}
