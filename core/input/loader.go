// Package input implements the Loader interface.
// It reads source HTML files from the local filesystem.
package input

import (
	"fmt"
	"os"

	"github.com/mattbfit/docforge/core"
)

// FileLoader loads HTML documents from disk.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader {
	return &FileLoader{}
}

// Load reads the HTML file at the given path. A missing or unreadable
// file is an input fault; the pipeline aborts without producing output.
func (l *FileLoader) Load(path string) (*core.SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &core.SourceFile{
		Path: path,
		HTML: string(data),
	}, nil
}
