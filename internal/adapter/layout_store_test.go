package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

func TestLocalLayoutStore_SaveWritesYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalLayoutStore()

	layout := m.Layout{
		Rows: 3,
		Cols: 4,
		Spans: []m.Span{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 3},
			{Row: 1, Col: 3, RowSpan: 2, ColSpan: 1},
		},
	}

	path := m.Path(filepath.Join(dir, "markers", "grid.yaml"))
	if err := store.Save(path, layout); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("expected layout file to exist: %v", err)
	}

	var decoded m.Layout
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written layout is not valid YAML: %v", err)
	}

	if !reflect.DeepEqual(decoded, layout) {
		t.Errorf("decoded layout = %+v, want %+v", decoded, layout)
	}
}

func TestLocalLayoutStore_LoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalLayoutStore()

	layout := m.Layout{Rows: 2, Cols: 2, Spans: []m.Span{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}}}
	path := m.Path(filepath.Join(dir, "grid.yaml"))

	if err := store.Save(path, layout); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !reflect.DeepEqual(loaded, layout) {
		t.Errorf("Load = %+v, want %+v", loaded, layout)
	}
}

func TestLocalLayoutStore_LoadRejectsInvalidLayouts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewLocalLayoutStore()

	cases := []struct {
		name    string
		content string
	}{
		{"not yaml", "rows: [unclosed"},
		{"zero dimensions", "rows: 0\ncols: 3\n"},
		{"span out of bounds", "rows: 2\ncols: 2\nspans:\n  - row: 1\n    col: 1\n    rowSpan: 2\n    colSpan: 1\n"},
		{"empty span", "rows: 2\ncols: 2\nspans:\n  - row: 0\n    col: 0\n    rowSpan: 0\n    colSpan: 1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			if _, err := store.Load(m.Path(path)); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestLocalLayoutStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewLocalLayoutStore()

	if _, err := store.Load(m.Path(filepath.Join(t.TempDir(), "absent.yaml"))); err == nil {
		t.Error("expected Load of a missing file to fail")
	}
}
