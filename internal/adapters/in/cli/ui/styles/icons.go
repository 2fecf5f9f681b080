package styles

// Nerd Font icons for terminal output.
const (
	IconError    = "" // nf-fa-times
	IconRoute    = "" // nf-fa-sitemap
	IconRedirect = "" // nf-fa-external_link
)
