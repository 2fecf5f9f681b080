// Package mappingfile implements the MappingSource port on top of a JSON
// (or YAML) file holding a flat alias -> target table.
package mappingfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/AkiBarry/alias-proxy/internal/boundaries/out"
	"github.com/AkiBarry/alias-proxy/internal/domain"
	"github.com/AkiBarry/alias-proxy/pkg/parser"
)

// ErrEmptyMapping is returned when the file holds no document at all.
var ErrEmptyMapping = errors.New("mapping file is empty")

var _ out.MappingSource = (*Loader)(nil)

// Loader reads the mapping file. Valid JSON is decoded as a token stream and
// anything else as YAML; both keep entries in file order.
type Loader struct {
	fsys fs.FS
	name string
	path string
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{
		fsys: os.DirFS(filepath.Dir(path)),
		name: filepath.Base(path),
		path: path,
	}
}

// NewLoaderFS creates a loader reading name from fsys.
func NewLoaderFS(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name, path: name}
}

// Load implements out.MappingSource.
func (l *Loader) Load(ctx context.Context) (domain.Mapping, error) {
	log.FromContext(ctx).Debug("reading mapping", "path", l.path)

	content, err := parser.ReadFile(l.fsys, l.name)
	if err != nil {
		return nil, &domain.LoadError{Path: l.path, Err: err}
	}

	mapping, err := l.decode(content)
	if err != nil {
		return nil, &domain.LoadError{Path: l.path, Err: err}
	}
	return mapping, nil
}

func (l *Loader) decode(content []byte) (domain.Mapping, error) {
	if json.Valid(content) {
		return decodeJSONMapping(content)
	}

	var doc yaml.Node
	if err := parser.ParseYAML(content, l.name, &doc); err != nil {
		return nil, err
	}
	return decodeMapping(&doc)
}

// decodeMapping turns a parsed document into entries. Only a single flat
// table of string keys to string values is accepted.
func decodeMapping(doc *yaml.Node) (domain.Mapping, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyMapping
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a table of alias -> target, got %s", root.Line, describe(root))
	}

	mapping := make(domain.Mapping, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if !isString(key) {
			return nil, fmt.Errorf("line %d: alias must be a string, got %s", key.Line, describe(key))
		}
		if line, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("line %d: alias %q already defined at line %d", key.Line, key.Value, line)
		}
		if !isString(value) {
			return nil, fmt.Errorf("line %d: target of %q must be a string, got %s", value.Line, key.Value, describe(value))
		}

		seen[key.Value] = key.Line
		mapping = append(mapping, domain.Entry{Alias: key.Value, Target: value.Value})
	}

	return mapping, nil
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "table"
	case yaml.SequenceNode:
		return "list"
	case yaml.AliasNode:
		return "alias reference"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return "null"
		case "!!bool":
			return "boolean"
		case "!!int", "!!float":
			return "number"
		}
		return n.ShortTag()
	default:
		return "unknown node"
	}
}
