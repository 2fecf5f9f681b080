// Package styles provides the terminal styling used by the CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal palette.
var (
	NeonGreen  = lipgloss.Color("#00ff88")
	NeonCyan   = lipgloss.Color("#00ccff")
	NeonViolet = lipgloss.Color("#a78bfa")
	NeonRed    = lipgloss.Color("#ff4444")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")

	// Semantic colors
	ColorPrimary = NeonGreen
	ColorError   = NeonRed

	// Target kinds
	ColorLocal    = NeonCyan
	ColorExternal = NeonViolet

	// Text colors
	ColorText      = Neutral200
	ColorTextMuted = Neutral500

	// Border colors
	ColorBorder = Neutral700
)
