// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout carrying a discarding logger.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return log.WithContext(ctx, log.New(io.Discard))
}

// WriteMapping writes content as mapping.json into a fresh temp dir and
// returns the mapping path together with a sibling dynamic.yml path.
func WriteMapping(t *testing.T, content string) (mappingPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	mappingPath = filepath.Join(dir, "mapping.json")
	outputPath = filepath.Join(dir, "dynamic.yml")
	require.NoError(t, os.WriteFile(mappingPath, []byte(content), 0o600))
	return mappingPath, outputPath
}

// FixtureMapping returns a canned mapping document by name.
func FixtureMapping(t *testing.T, name string) string {
	t.Helper()
	switch name {
	case "mixed.json":
		return `{
	"app": "localhost:3000",
	"api": "127.0.0.1:8080/v1",
	"docs": "docs.example.com",
	"blog": "http://blog.example.com"
}`
	case "empty.json":
		return `{}`
	case "invalid-alias.json":
		return `{"good": "localhost:3000", "Bad": "example.com"}`
	default:
		t.Fatalf("unknown fixture %q", name)
		return ""
	}
}
