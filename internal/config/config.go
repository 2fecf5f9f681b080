// Package config resolves the file locations and naming conventions of a
// generation run. Values come from the environment (optionally seeded by a
// .env file); there are no command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ALIASPROXY"

// Defaults matching the fixed conventions of the generator.
const (
	DefaultMappingPath = "mapping.json"
	DefaultOutputPath  = "dynamic.yml"
	DefaultEntryPoint  = "web"
	DefaultGatewayHost = "host.docker.internal"
)

// Config holds the resolved settings of a run.
type Config struct {
	MappingPath string
	OutputPath  string
	EntryPoint  string
	GatewayHost string
}

// NewViper returns a viper instance bound to the ALIASPROXY_* environment
// with every default registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mapping_path", DefaultMappingPath)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("entry_point", DefaultEntryPoint)
	v.SetDefault("gateway_host", DefaultGatewayHost)

	return v
}

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Debug("environment file loaded", "path", path)
	return nil
}

// Load reads the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		MappingPath: strings.TrimSpace(v.GetString("mapping_path")),
		OutputPath:  strings.TrimSpace(v.GetString("output_path")),
		EntryPoint:  strings.TrimSpace(v.GetString("entry_point")),
		GatewayHost: strings.TrimSpace(v.GetString("gateway_host")),
	}

	if cfg.MappingPath == "" {
		return nil, fmt.Errorf("mapping_path cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("output_path cannot be empty")
	}
	if cfg.EntryPoint == "" {
		return nil, fmt.Errorf("entry_point cannot be empty")
	}
	if cfg.GatewayHost == "" {
		return nil, fmt.Errorf("gateway_host cannot be empty")
	}
	if strings.Contains(cfg.GatewayHost, "://") || strings.Contains(cfg.GatewayHost, "/") {
		return nil, fmt.Errorf("gateway_host should be just the host name (e.g. 'host.docker.internal')")
	}

	return cfg, nil
}
