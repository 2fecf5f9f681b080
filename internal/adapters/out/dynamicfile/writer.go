// Package dynamicfile implements the DocumentWriter port as a YAML file
// consumed by the reverse proxy file provider.
package dynamicfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/AkiBarry/alias-proxy/internal/boundaries/out"
	"github.com/AkiBarry/alias-proxy/internal/domain"
)

const (
	yamlIndent = 2
	filePerm   = 0644
)

var _ out.DocumentWriter = (*Writer)(nil)

// Writer serializes documents to a single YAML file.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Destination implements out.DocumentWriter.
func (w *Writer) Destination() string {
	return w.path
}

// Write implements out.DocumentWriter. The file is replaced atomically: on
// failure the previous content, if any, is left untouched.
func (w *Writer) Write(ctx context.Context, doc domain.Document) error {
	logger := log.FromContext(ctx)

	data, err := Marshal(doc)
	if err != nil {
		return &domain.WriteError{Path: w.path, Err: err}
	}

	_, statErr := os.Stat(w.path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(w.path, bytes.NewReader(data)); err != nil {
		return &domain.WriteError{Path: w.path, Err: err}
	}

	// atomic.WriteFile keeps the mode of a replaced file but creates new
	// files with mode 0600.
	if created {
		if err := os.Chmod(w.path, filePerm); err != nil {
			logger.Warn("failed to set permissions on dynamic configuration", "path", w.path, "err", err)
		}
	}

	logger.Debug("dynamic configuration serialized", "path", w.path, "bytes", len(data))
	return nil
}

// Marshal renders doc as YAML with the key order of the document.
func Marshal(doc domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(fromDocument(doc)); err != nil {
		return nil, fmt.Errorf("failed to encode dynamic configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode dynamic configuration: %w", err)
	}

	return buf.Bytes(), nil
}
