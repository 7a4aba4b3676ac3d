package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:     "convert <hex>",
	Aliases: []string{"conv"},
	Short:   "Convert a hex code to channel values",
	Long:    "Parse a 3- or 6-digit hex code and print its channels, rgb() form and luminance.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseFullHex(args[0])
		if err != nil {
			return err
		}

		tone := "dark"
		if c.IsLight() {
			tone = "light"
		}

		fmt.Printf("%s\n", swatch(c))
		fmt.Printf("hex        %s\n", c.Hex())
		fmt.Printf("rgb        %s\n", c.RGB())
		fmt.Printf("channels   R=%d G=%d B=%d\n", c.R, c.G, c.B)
		fmt.Printf("luminance  %.1f (%s, label %s)\n", c.Luminance(), tone, c.LabelColor())
		return nil
	},
}
