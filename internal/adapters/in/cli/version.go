package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AkiBarry/alias-proxy/pkg/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "alias-proxy %s\nCommit: %s\nBuild Date: %s\n",
				version.Version(), version.Commit(), version.BuildDate())
			return err
		},
	}
}
