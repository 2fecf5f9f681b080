// Package cli implements the CLI adapter for alias-proxy.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/AkiBarry/alias-proxy/internal/app"
	"github.com/AkiBarry/alias-proxy/internal/config"
	"github.com/AkiBarry/alias-proxy/pkg/logger"
)

// EnvFile is the optional environment file read from the working directory.
const EnvFile = ".env"

// NewRootCmd creates the root command for the alias-proxy CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alias-proxy",
		Short: "Generate a Traefik dynamic configuration from an alias mapping",
		Long: `alias-proxy reads mapping.json, a flat table of alias -> target, and writes
dynamic.yml for Traefik's file provider.

Targets on 127.0.0.1 or localhost are forwarded through host.docker.internal.
Any other target is answered with a temporary redirect.

Paths and naming conventions are read from ALIASPROXY_* environment variables,
optionally seeded by a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(EnvFile); err != nil {
				return err
			}
			logger.GetLogger().ConfigureFromEnv()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd)
		},
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_ = cliWriteLine(os.Stderr, cliRenderError(err.Error()))
		return err
	}
	return nil
}

// newKernel builds the in-process services from the environment.
func newKernel() (*app.Kernel, error) {
	return app.NewKernel(config.NewViper())
}

// runContext returns the command context tagged with a run logger.
func runContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithRun(ctx)
}
