package cli

import (
	"fmt"
	"io"

	"github.com/AkiBarry/alias-proxy/internal/adapters/in/cli/ui/styles"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderEmptyState(msg string) string {
	return cliRenderMuted(msg)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}
