package colorvpcmder

import (
	"fmt"

	"github.com/spf13/cobra"
)

const importLongDesc string = `Import a JSON palette into the SQLite palette table.

Entries are upserted by hex code; the table version is bumped so open
color_match tables rebuild their tree.

Examples:
  colorvp import --sqlite palette.db
  colorvp import s3://bucket/palettes/colors.json --sqlite palette.db`

func newImportCmd(root *colorvpCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "import [url]",
		Short: "Import a palette into SQLite",
		Long:  importLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				root.cfg.Palette = args[0]
			}
			ctx := cmd.Context()
			p, err := root.loadPalette(ctx, false)
			if err != nil {
				return err
			}
			db, st, err := root.openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := st.AddColors(ctx, p.Colors()); err != nil {
				return err
			}
			version, err := st.Version(ctx)
			if err != nil {
				return err
			}
			root.logger.Info("palette imported", "url", root.cfg.Palette, "table", st.Table(), "colors", p.Len(), "version", version)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d colors into %s (version %d)\n", p.Len(), st.Table(), version)
			return nil
		},
	}
}
