package colorvpcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/colorvp/color"
)

const shadesLongDesc string = `Sample evenly spaced shades of a color along one LCh channel and print
the distinct palette entries they quantize to.

Examples:
  colorvp shades '#0e5d83'
  colorvp shades '#0e5d83' --max 12 --lerp hue`

type shadesCommander struct {
	root      *colorvpCommander
	maxShades int
	lerp      string
	fromDB    bool
}

func newShadesCmd(root *colorvpCommander) *cobra.Command {
	cmder := &shadesCommander{root: root}

	cmd := &cobra.Command{
		Use:   "shades <hex>",
		Short: "Quantize the shades of a color",
		Long:  shadesLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}
	cmd.Flags().IntVarP(&cmder.maxShades, "max", "m", 8, "Number of shades to sample")
	cmd.Flags().StringVarP(&cmder.lerp, "lerp", "l", "luminance", "Channel to vary: luminance, chroma or hue")
	cmd.Flags().BoolVar(&cmder.fromDB, "db", false, "Read the palette from the SQLite table")
	return cmd
}

func lerpByName(name string) (color.Lerp, error) {
	switch name {
	case "luminance":
		return color.LuminanceLerp(0, 1), nil
	case "chroma":
		return color.ChromaLerp(0, 1), nil
	case "hue":
		return color.HueLerp(0, 1), nil
	}
	return color.Lerp{}, fmt.Errorf("unknown lerp %q (available: luminance, chroma, hue)", name)
}

func (c *shadesCommander) run(cmd *cobra.Command, hex string) error {
	base, err := color.FromHex(hex)
	if err != nil {
		return err
	}
	lerp, err := lerpByName(c.lerp)
	if err != nil {
		return err
	}
	if c.maxShades <= 0 {
		return fmt.Errorf("--max must be positive, got %d", c.maxShades)
	}
	p, err := c.root.loadPalette(cmd.Context(), c.fromDB)
	if err != nil {
		return err
	}
	for _, named := range p.QuantizedShades(base, c.maxShades, lerp) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", named.Hex(), named.Name)
	}
	return nil
}
