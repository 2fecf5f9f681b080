package dynamicfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

func sampleDocument() domain.Document {
	return domain.Document{
		Routers: []domain.Router{
			{Name: "zeta", Rule: "Host(`zeta`)", EntryPoints: []string{"web"}, Service: "zeta"},
			{Name: "bar", Rule: "Host(`bar`)", EntryPoints: []string{"web"}, Service: "bar-noop", Middlewares: []string{"bar-redirect"}},
		},
		Services: []domain.Service{
			{Name: "zeta", Servers: []string{"http://host.docker.internal:9000"}},
			{Name: "bar-noop", Servers: []string{"http://127.0.0.1"}},
		},
		Middlewares: []domain.RedirectMiddleware{
			{Name: "bar-redirect", Regex: "^http://[^/]+(.*)", Replacement: "https://bar.example.com$1", Permanent: false},
		},
	}
}

// mappingKeys returns the keys of the mapping found at path, in file order.
func mappingKeys(t *testing.T, data []byte, path ...string) []string {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	node := doc.Content[0]
	for _, key := range path {
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		require.NotNil(t, next, "key %q not found", key)
		node = next
	}

	var keys []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

func TestMarshal_Structure(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))

	want := map[string]any{
		"http": map[string]any{
			"routers": map[string]any{
				"zeta": map[string]any{
					"rule":        "Host(`zeta`)",
					"entryPoints": []any{"web"},
					"service":     "zeta",
				},
				"bar": map[string]any{
					"rule":        "Host(`bar`)",
					"entryPoints": []any{"web"},
					"service":     "bar-noop",
					"middlewares": []any{"bar-redirect"},
				},
			},
			"services": map[string]any{
				"zeta": map[string]any{
					"loadBalancer": map[string]any{
						"servers": []any{map[string]any{"url": "http://host.docker.internal:9000"}},
					},
				},
				"bar-noop": map[string]any{
					"loadBalancer": map[string]any{
						"servers": []any{map[string]any{"url": "http://127.0.0.1"}},
					},
				},
			},
			"middlewares": map[string]any{
				"bar-redirect": map[string]any{
					"redirectRegex": map[string]any{
						"regex":       "^http://[^/]+(.*)",
						"replacement": "https://bar.example.com$1",
						"permanent":   false,
					},
				},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestMarshal_KeepsInsertionOrder(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, []string{"http"}, mappingKeys(t, data))
	assert.Equal(t, []string{"routers", "services", "middlewares"}, mappingKeys(t, data, "http"))
	assert.Equal(t, []string{"zeta", "bar"}, mappingKeys(t, data, "http", "routers"))
	assert.Equal(t, []string{"zeta", "bar-noop"}, mappingKeys(t, data, "http", "services"))
	assert.Equal(t, []string{"rule", "entryPoints", "service", "middlewares"}, mappingKeys(t, data, "http", "routers", "bar"))
	assert.Equal(t, []string{"regex", "replacement", "permanent"}, mappingKeys(t, data, "http", "middlewares", "bar-redirect", "redirectRegex"))
}

func TestMarshal_OmitsEmptyMiddlewares(t *testing.T) {
	doc := sampleDocument()
	doc.Routers = doc.Routers[:1]
	doc.Services = doc.Services[:1]
	doc.Middlewares = nil

	data, err := Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"routers", "services"}, mappingKeys(t, data, "http"))
	assert.NotContains(t, string(data), "middlewares")
}

func TestMarshal_EmptyDocument(t *testing.T) {
	data, err := Marshal(domain.Document{})
	require.NoError(t, err)

	assert.Equal(t, []string{"routers", "services"}, mappingKeys(t, data, "http"))
	assert.Empty(t, mappingKeys(t, data, "http", "routers"))
}

func TestMarshal_Stable(t *testing.T) {
	first, err := Marshal(sampleDocument())
	require.NoError(t, err)
	second, err := Marshal(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.yml")
	w := NewWriter(path)

	require.NoError(t, w.Write(context.Background(), sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "http:\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
	assert.Equal(t, path, w.Destination())
}

func TestWriter_Write_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.yml")
	require.NoError(t, os.WriteFile(path, []byte("stale: true\n"), 0644))

	require.NoError(t, NewWriter(path).Write(context.Background(), sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriter_Write_KeepsModeOfExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.yml")
	require.NoError(t, os.WriteFile(path, []byte("stale: true\n"), 0600))
	require.NoError(t, os.Chmod(path, 0640))

	require.NoError(t, NewWriter(path).Write(context.Background(), sampleDocument()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestWriter_Write_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dynamic.yml")

	err := NewWriter(path).Write(context.Background(), sampleDocument())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentWrite)

	var writeErr *domain.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, path, writeErr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
