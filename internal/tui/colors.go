package tui

import "github.com/balkashynov/grady/internal/preview"

// Color constants for grady TUI theme
const (
	// Base Colors
	ColorPanelBackground = preview.ColorBackdrop // Dark purple behind the previews
	ColorBorder          = "#3A3F55"             // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Labels, user input, titles
	ColorSecondaryText = "#B1B8C7" // Subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled delete affordance
	ColorPlaceholder   = ColorSecondaryText
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Active tab, active borders
	ColorAccentBright = "#A78BFA" // Highlights, selected row

	// State Colors
	ColorError   = "#EF4444" // Rejected operations, bad input
	ColorSuccess = "#22C55E" // Confirmations
)
