package colorvpcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/match"
	"github.com/viant/colorvp/store"
)

const matchLongDesc string = `Quantize colors through the color_match SQL virtual table.

A <table>_match virtual table is bound to the palette table and answers
"hex MATCH ?" with the nearest entry.

Examples:
  colorvp match '#ff3860' --sqlite palette.db`

func newMatchCmd(root *colorvpCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "match <hex>...",
		Short: "Quantize colors with SQL",
		Long:  matchLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, st, err := root.openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			defer match.Release(db)
			name := st.Table() + "_match"
			if err := match.Bind(ctx, db, name, st.Table(), match.WithLogger(root.logger)); err != nil {
				return err
			}
			host, err := match.Host()
			if err != nil {
				return err
			}
			query := "SELECT hex, name, distance FROM " + store.QuoteIdentifier(name) + " WHERE hex MATCH ?"
			out := cmd.OutOrStdout()
			for _, arg := range args {
				var hex, colorName string
				var distance float64
				if err := host.QueryRowContext(ctx, query, arg).Scan(&hex, &colorName, &distance); err != nil {
					return fmt.Errorf("matching %v: %w", arg, err)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%.4f\n", arg, hex, colorName, distance)
			}
			return nil
		},
	}
}
