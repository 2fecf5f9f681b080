package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AkiBarry/alias-proxy/internal/domain"
	"github.com/AkiBarry/alias-proxy/internal/testutils"
	"github.com/AkiBarry/alias-proxy/pkg/version"
)

// setupWorkspace writes mapping into a temp dir and points the environment at it.
func setupWorkspace(t *testing.T, mapping string) (mappingPath, outputPath string) {
	t.Helper()

	mappingPath, outputPath = testutils.WriteMapping(t, mapping)

	t.Setenv("ALIASPROXY_MAPPING_PATH", mappingPath)
	t.Setenv("ALIASPROXY_OUTPUT_PATH", outputPath)
	t.Setenv("ALIASPROXY_LOG_LEVEL", "error")

	return mappingPath, outputPath
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_GeneratesDocument(t *testing.T) {
	_, outputPath := setupWorkspace(t, testutils.FixtureMapping(t, "mixed.json"))

	out, err := executeRoot(t)
	require.NoError(t, err)
	assert.Contains(t, out, outputPath+" generated successfully!")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	httpSection := doc["http"].(map[string]any)
	assert.Len(t, httpSection["routers"], 4)
	assert.Len(t, httpSection["services"], 4)
	assert.Len(t, httpSection["middlewares"], 2)
	assert.Contains(t, string(data), "url: http://host.docker.internal:3000")
	assert.Contains(t, string(data), "url: http://host.docker.internal:8080/v1")
	assert.Contains(t, string(data), "replacement: https://docs.example.com$1")
	assert.Contains(t, string(data), "replacement: http://blog.example.com$1")
}

func TestRoot_InvalidAliasLeavesOutputUntouched(t *testing.T) {
	_, outputPath := setupWorkspace(t, testutils.FixtureMapping(t, "invalid-alias.json"))
	require.NoError(t, os.WriteFile(outputPath, []byte("previous\n"), 0o644))

	out, err := executeRoot(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAlias)
	assert.NotContains(t, out, "generated successfully")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Bad", validationErr.Alias)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestRoot_InvalidAliasWritesNothing(t *testing.T) {
	_, outputPath := setupWorkspace(t, `{"my-app": "localhost:3000"}`)

	_, err := executeRoot(t)
	require.ErrorIs(t, err, domain.ErrInvalidAlias)
	assert.NoFileExists(t, outputPath)
}

func TestRoot_MissingMapping(t *testing.T) {
	mappingPath, outputPath := setupWorkspace(t, testutils.FixtureMapping(t, "empty.json"))
	require.NoError(t, os.Remove(mappingPath))

	_, err := executeRoot(t)
	require.ErrorIs(t, err, domain.ErrMappingLoad)
	assert.NoFileExists(t, outputPath)
}

func TestRoot_RejectsArguments(t *testing.T) {
	setupWorkspace(t, testutils.FixtureMapping(t, "empty.json"))

	_, err := executeRoot(t, "mapping.json")
	assert.Error(t, err)
}

func TestCheck_PrintsPlanWithoutWriting(t *testing.T) {
	_, outputPath := setupWorkspace(t, `{"app": "127.0.0.1:8080", "docs": "http://docs.example.com"}`)

	out, err := executeRoot(t, "check")
	require.NoError(t, err)

	assert.Contains(t, out, "app")
	assert.Contains(t, out, "http://host.docker.internal:8080")
	assert.Contains(t, out, "docs")
	assert.Contains(t, out, "external")
	assert.Contains(t, out, "2 routers, 2 services, 1 middlewares")
	assert.NoFileExists(t, outputPath)
}

func TestCheck_EmptyMapping(t *testing.T) {
	setupWorkspace(t, testutils.FixtureMapping(t, "empty.json"))

	out, err := executeRoot(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No aliases defined")
}

func TestCheck_InvalidAlias(t *testing.T) {
	setupWorkspace(t, `{"app1": "localhost"}`)

	_, err := executeRoot(t, "check")
	assert.ErrorIs(t, err, domain.ErrInvalidAlias)
}

func TestVersion(t *testing.T) {
	version.Set("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { version.Set("dev", "unknown", "unknown") })

	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "alias-proxy 1.2.3")
	assert.Contains(t, out, "Commit: abc123")
	assert.Contains(t, out, "Build Date: 2026-01-01")
}
