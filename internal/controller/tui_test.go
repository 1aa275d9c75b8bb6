package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

func TestRenderBars(t *testing.T) {
	bars := RenderBars("101")

	lines := strings.Split(bars, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected a doubled bar row, got %d lines", len(lines))
	}

	for _, line := range lines {
		if !strings.Contains(line, "█ █") {
			t.Errorf("bar line = %q, want block-space-block", line)
		}
	}
}

func TestTUI_DisplayEncodeResults(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	results := []m.EncodeResult{
		{Sequence: "000000000000", Checksum: 0, Modules: "101" + strings.Repeat("0001101", 6) + "01010" + strings.Repeat("1110010", 6) + "101"},
		{Sequence: "short", Err: errors.New("invalid input: sequence must be 12 or 13 digits")},
	}

	if err := tui.DisplayEncodeResults(results, false); err != nil {
		t.Fatalf("DisplayEncodeResults returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "000000000000") || !strings.Contains(out, "check digit 0") {
		t.Errorf("output missing sequence line:\n%s", out)
	}

	if !strings.Contains(out, "█") {
		t.Errorf("output missing bar preview:\n%s", out)
	}

	if !strings.Contains(out, results[0].Modules) {
		t.Errorf("output missing raw module string:\n%s", out)
	}

	if !strings.Contains(out, "error: invalid input") {
		t.Errorf("output missing error line:\n%s", out)
	}
}

func TestTUI_DisplayRegions(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	regions := []m.Region{
		{Row: 0, Col: 0, RowSpan: 2, ColSpan: 2, Merged: true, X: 0, Y: 0, Width: 10, Height: 10},
	}

	if err := tui.DisplayRegions("marker.yaml", regions); err != nil {
		t.Fatalf("DisplayRegions returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "marker.yaml") || !strings.Contains(out, "span 2x2") {
		t.Errorf("output missing region line:\n%s", out)
	}

	if !strings.Contains(out, "1 regions, 1 merged") {
		t.Errorf("output missing summary:\n%s", out)
	}
}
