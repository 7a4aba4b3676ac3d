package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ho-67/colorpick/internal/color"
	"github.com/Ho-67/colorpick/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <hex>",
	Short: "Print harmony palettes for a color",
	Long:  "Derive complement, analogous and shade palettes from a hex code.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseFullHex(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("base        %s  %s\n", swatch(c), c.RGB())
		fmt.Printf("complement  %s\n", swatch(palette.Complement(c)))
		fmt.Printf("analogous   %s\n", paletteRow(palette.Analogous(c, 3)))
		fmt.Printf("shades      %s\n", paletteRow(palette.Shades(c, 5)))
		return nil
	},
}

func paletteRow(colors []color.Color) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, chip(c)+" "+c.Hex())
	}
	return strings.Join(parts, "  ")
}
