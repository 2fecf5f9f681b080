package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AkiBarry/alias-proxy/internal/adapters/in/cli/ui/components"
	"github.com/AkiBarry/alias-proxy/internal/adapters/in/cli/ui/styles"
	"github.com/AkiBarry/alias-proxy/internal/boundaries/in"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the mapping and show the planned routes",
		Long: `Load and validate the mapping, then print how every alias would be routed.
Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	kernel, err := newKernel()
	if err != nil {
		return err
	}

	plan, err := kernel.Generate().Plan(runContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := cliWriteLine(out, cliRenderTitle("Mapping "+kernel.Config().MappingPath)); err != nil {
		return err
	}

	if len(plan.Entries) == 0 {
		return cliWriteLine(out, cliRenderEmptyState("No aliases defined"))
	}

	if err := cliWriteLine(out, components.AliasTable(planRows(plan))); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d routers, %d services, %d middlewares",
		len(plan.Document.Routers),
		len(plan.Document.Services),
		len(plan.Document.Middlewares))
	return cliWriteLine(out, cliRenderMuted(summary))
}

func planRows(plan *in.Plan) [][]string {
	rows := make([][]string, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		rows = append(rows, []string{
			entry.Alias,
			styles.RenderKind(entry.Kind.String()),
			entry.Target,
			entry.Destination,
		})
	}
	return rows
}
