package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles of the CLI.
var Theme = struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style

	Local    lipgloss.Style
	External lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Local: lipgloss.NewStyle().
		Foreground(ColorLocal),

	External: lipgloss.NewStyle().
		Foreground(ColorExternal),
}

// RenderKind returns a styled target kind label with icon.
func RenderKind(kind string) string {
	switch kind {
	case "local":
		return Theme.Local.Render(IconRoute + " " + kind)
	case "external":
		return Theme.External.Render(IconRedirect + " " + kind)
	default:
		return Theme.Muted.Render(kind)
	}
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}
