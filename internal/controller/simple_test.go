package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayEncodeResults(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	results := []m.EncodeResult{
		{Sequence: "598163411121", Checksum: 6, Modules: strings.Repeat("10", 47) + "1"},
		{Sequence: "bad", Err: errors.New("invalid input: sequence must be 12 or 13 digits")},
	}

	if err := ui.DisplayEncodeResults(results, false); err != nil {
		t.Fatalf("DisplayEncodeResults returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "598163411121") {
		t.Errorf("output missing sequence:\n%s", out)
	}

	if !strings.Contains(out, results[0].Modules) {
		t.Errorf("output missing module string:\n%s", out)
	}

	if !strings.Contains(out, "error: invalid input") {
		t.Errorf("output missing error row:\n%s", out)
	}

	upper := strings.ToUpper(out)
	if !strings.Contains(upper, "TOTAL 2") || !strings.Contains(upper, "FAILED 1") {
		t.Errorf("output missing totals footer:\n%s", out)
	}

	if strings.Contains(out, "█") {
		t.Errorf("bar preview shown without being requested:\n%s", out)
	}
}

func TestSimpleUI_DisplayEncodeResultsWithBars(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	results := []m.EncodeResult{
		{Sequence: "598163411121", Checksum: 6, Modules: strings.Repeat("10", 47) + "1"},
		{Sequence: "bad", Err: errors.New("invalid input: sequence must be 12 or 13 digits")},
	}

	if err := ui.DisplayEncodeResults(results, true); err != nil {
		t.Fatalf("DisplayEncodeResults returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "█ ") {
		t.Errorf("output missing bar preview:\n%s", out)
	}

	// The failed sequence has no modules, so only one preview appears.
	if got := strings.Count(out, "598163411121"); got != 2 {
		t.Errorf("sequence printed %d times, want table row plus preview label", got)
	}
}

func TestSimpleUI_DisplayRegions(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	regions := []m.Region{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2, Merged: true, X: 0, Y: -2.5, Width: 10, Height: 5},
		{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, X: -2.5, Y: 2.5, Width: 5, Height: 5},
	}

	if err := ui.DisplayRegions("marker.yaml", regions); err != nil {
		t.Fatalf("DisplayRegions returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "marker.yaml") {
		t.Errorf("output missing source name:\n%s", out)
	}

	if !strings.Contains(out, "merged") || !strings.Contains(out, "unit") {
		t.Errorf("output missing region kinds:\n%s", out)
	}

	if !strings.Contains(out, "1x2") {
		t.Errorf("output missing span size:\n%s", out)
	}

	upper := strings.ToUpper(out)
	if !strings.Contains(upper, "REGIONS 2") || !strings.Contains(upper, "MERGED 1") {
		t.Errorf("output missing footer:\n%s", out)
	}
}

func TestSimpleUI_EditGridFallback(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	session := newFakeSession(2, 2)
	session.cells[0][0] = m.CellMerged
	session.cells[0][1] = m.CellMerged

	if err := ui.EditGrid(session, 10, 10); err != nil {
		t.Fatalf("EditGrid returned error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "requires a terminal") {
		t.Errorf("output missing fallback notice:\n%s", out)
	}

	if !strings.Contains(out, "M M\n. .") {
		t.Errorf("output missing grid text:\n%s", out)
	}
}
