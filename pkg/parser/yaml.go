package parser

import (
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ReadFile returns the content of filename in fsys.
func ReadFile(fsys fs.FS, filename string) ([]byte, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return content, nil
}

// ParseYAML unmarshals content read from filename into out. Passing a
// *yaml.Node keeps key order and source positions.
func ParseYAML(content []byte, filename string, out interface{}) error {
	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}
