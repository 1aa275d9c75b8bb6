// Package adapter provides host-side persistence for marker generation.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// LayoutStore persists and retrieves grid layouts. The core keeps grid
// state in memory only; carrying a layout across CLI invocations is host
// plumbing and lives here.
type LayoutStore interface {
	Save(path m.Path, layout m.Layout) error
	Load(path m.Path) (m.Layout, error)
}

// LocalLayoutStore stores layouts as YAML files on the local file system.
type LocalLayoutStore struct{}

// NewLocalLayoutStore constructs a LayoutStore backed by the local FS.
func NewLocalLayoutStore() LayoutStore {
	return &LocalLayoutStore{}
}

// Save writes the layout to path as YAML, creating parent directories.
func (ls *LocalLayoutStore) Save(path m.Path, layout m.Layout) error {
	if err := validateLayout(layout); err != nil {
		return fmt.Errorf("layout %s: %w", path, err)
	}

	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create layout directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write layout %s: %w", path, err)
	}

	return nil
}

// Load reads and validates a layout from path.
func (ls *LocalLayoutStore) Load(path m.Path) (m.Layout, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var layout m.Layout

	if err := yaml.Unmarshal(data, &layout); err != nil {
		return m.Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	if err := validateLayout(layout); err != nil {
		return m.Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}

	return layout, nil
}

func validateLayout(layout m.Layout) error {
	if layout.Rows < 1 || layout.Cols < 1 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", layout.Rows, layout.Cols)
	}

	for _, span := range layout.Spans {
		if span.RowSpan < 1 || span.ColSpan < 1 {
			return fmt.Errorf("span at (%d, %d) is empty", span.Row, span.Col)
		}

		if span.Row < 0 || span.Col < 0 ||
			span.Row+span.RowSpan > layout.Rows || span.Col+span.ColSpan > layout.Cols {
			return fmt.Errorf("span at (%d, %d) exceeds the %dx%d grid", span.Row, span.Col, layout.Rows, layout.Cols)
		}
	}

	return nil
}
