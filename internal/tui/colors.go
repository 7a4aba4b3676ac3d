package tui

// Color constants for the colorpick TUI theme
const (
	// Chrome
	ColorBorder = "#3A3F55" // Grey-blue panel borders

	// Text
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input
	ColorSecondaryText = "#B1B8C7" // Subtle purple-tinted grey
	ColorPlaceholder   = "#B1B8C7" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for the help bar

	// Accents
	ColorAccentMain   = "#7C3AED" // Logo, focused borders
	ColorAccentBright = "#A78BFA" // Focus arrow, highlights

	// States
	ColorError   = "#EF4444" // Invalid hex input
	ColorSuccess = "#22C55E" // Copy confirmation

	// Channel tints for the slider bars
	ColorChannelRed   = "#F87171"
	ColorChannelGreen = "#4ADE80"
	ColorChannelBlue  = "#60A5FA"
)
