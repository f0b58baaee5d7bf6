package colorvpcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/color"
)

const quantizeLongDesc string = `Print the nearest palette entry for each hex color.

Each output line holds the input, the palette hex, the palette name and the
distance, separated by tabs.

Examples:
  colorvp quantize '#ff3860'
  colorvp quantize --db '#ff3860' '#000001'`

type quantizeCommander struct {
	root   *colorvpCommander
	fromDB bool
}

func newQuantizeCmd(root *colorvpCommander) *cobra.Command {
	cmder := &quantizeCommander{root: root}

	cmd := &cobra.Command{
		Use:   "quantize <hex>...",
		Short: "Quantize colors to the palette",
		Long:  quantizeLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&cmder.fromDB, "db", false, "Read the palette from the SQLite table")
	return cmd
}

func (c *quantizeCommander) run(cmd *cobra.Command, args []string) error {
	colors := make([]color.Color, len(args))
	for i, arg := range args {
		parsed, err := color.FromHex(arg)
		if err != nil {
			return err
		}
		colors[i] = parsed
	}
	p, err := c.root.loadPalette(cmd.Context(), c.fromDB)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, col := range colors {
		named, d := p.QuantizeWithDistance(col)
		fmt.Fprintf(out, "%s\t%s\t%s\t%.4f\n", args[i], named.Hex(), named.Name, d)
	}
	return nil
}
