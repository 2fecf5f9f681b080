package main

import (
	"os"

	"github.com/AkiBarry/alias-proxy/internal/adapters/in/cli"
	"github.com/AkiBarry/alias-proxy/pkg/version"
)

// Set via -ldflags "-X main.buildVersion=... -X main.buildCommit=... -X main.buildDate=...".
var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func main() {
	version.Set(buildVersion, buildCommit, buildDate)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
