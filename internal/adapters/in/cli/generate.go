package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command) error {
	kernel, err := newKernel()
	if err != nil {
		return err
	}

	if _, err := kernel.Generate().Generate(runContext(cmd)); err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	_, err = green.Fprintf(cmd.OutOrStdout(), "%s generated successfully!\n", kernel.Config().OutputPath)
	return err
}
