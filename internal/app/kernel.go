// Package app wires configuration, adapters and use cases together.
package app

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/AkiBarry/alias-proxy/internal/adapters/out/dynamicfile"
	"github.com/AkiBarry/alias-proxy/internal/adapters/out/mappingfile"
	"github.com/AkiBarry/alias-proxy/internal/boundaries/in"
	"github.com/AkiBarry/alias-proxy/internal/config"
	"github.com/AkiBarry/alias-proxy/internal/usecase/generate"
)

// Kernel provides in-process service access for CLI execution.
type Kernel struct {
	cfg         *config.Config
	generateSvc in.GenerateService
}

// NewKernel resolves the configuration from v and builds the services.
func NewKernel(v *viper.Viper) (*Kernel, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return NewKernelFromConfig(cfg), nil
}

// NewKernelFromConfig builds the services from an already resolved config.
func NewKernelFromConfig(cfg *config.Config) *Kernel {
	rules := generate.Rules{
		EntryPoint:  cfg.EntryPoint,
		GatewayHost: cfg.GatewayHost,
	}

	return &Kernel{
		cfg: cfg,
		generateSvc: generate.NewService(
			mappingfile.NewLoader(cfg.MappingPath),
			dynamicfile.NewWriter(cfg.OutputPath),
			rules,
		),
	}
}

// Config returns the resolved configuration.
func (k *Kernel) Config() *config.Config { return k.cfg }

// Generate returns the generation service.
func (k *Kernel) Generate() in.GenerateService { return k.generateSvc }
