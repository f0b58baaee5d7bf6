package colorvpcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/palette"
)

func newStatsCmd(root *colorvpCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the SQLite palette size, tree height and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, st, err := root.openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			colors, err := st.Colors(ctx)
			if err != nil {
				return err
			}
			version, err := st.Version(ctx)
			if err != nil {
				return err
			}
			height := -1
			if len(colors) > 0 {
				p, err := palette.New(colors, root.paletteOptions()...)
				if err != nil {
					return err
				}
				height = p.Height()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "table:   %s\n", st.Table())
			fmt.Fprintf(out, "colors:  %d\n", len(colors))
			fmt.Fprintf(out, "height:  %d\n", height)
			fmt.Fprintf(out, "version: %d\n", version)
			return nil
		},
	}
}
