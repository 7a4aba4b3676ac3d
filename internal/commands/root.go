package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ho-67/colorpick/internal/color"
	"github.com/Ho-67/colorpick/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var startHex string

var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "A terminal RGB color picker",
	Long: `colorpick is an interactive terminal color picker.
Drag the channel sliders, type hex codes, and copy the result to the
clipboard, all without leaving the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := color.New(128, 128, 128)
		if startHex != "" {
			c, err := parseFullHex(startHex)
			if err != nil {
				return err
			}
			start = c
		}
		return tui.RunPickerTUI(start)
	},
}

// parseFullHex accepts only complete codes; partial input that the picker
// would tolerate mid-edit is not a valid CLI argument.
func parseFullHex(s string) (color.Color, error) {
	c, verdict := color.ParseHex(s)
	switch verdict {
	case color.VerdictError:
		return color.Color{}, fmt.Errorf("invalid hex code %q", s)
	case color.VerdictTyping:
		return color.Color{}, fmt.Errorf("incomplete hex code %q: want 3 or 6 hex digits", s)
	}
	return c, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&startHex, "hex", "", "start from a hex code like #FF00AA")

	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(versionCmd)
}
