package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ho-67/colorpick/internal/color"
)

var randomCount int

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print random colors",
	Long:  "Draw colors with three independent uniform channels and print them.",
	Run: func(cmd *cobra.Command, args []string) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i := 0; i < randomCount; i++ {
			c := color.Random(rng)
			fmt.Printf("%s  %s\n", swatch(c), c.RGB())
		}
	},
}

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of colors to print")
}
