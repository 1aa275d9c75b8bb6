package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display and lipgloss
// for styled output.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

var (
	sequenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// DisplayEncodeResults prints each sequence with its check digit, a block
// glyph bar preview and the raw module string. Bars are always part of the
// terminal rendering, so showBars has nothing left to enable.
func (t *TUI) DisplayEncodeResults(results []m.EncodeResult, _ bool) error {
	for _, result := range results {
		if result.Err != nil {
			_, _ = fmt.Fprintf(t.output, "%s  %s\n",
				sequenceStyle.Render(result.Sequence),
				errorStyle.Render(fmt.Sprintf("error: %v", result.Err)),
			)

			continue
		}

		_, _ = fmt.Fprintf(t.output, "%s  %s\n%s\n%s\n",
			sequenceStyle.Render(result.Sequence),
			checkStyle.Render(fmt.Sprintf("check digit %d", result.Checksum)),
			RenderBars(result.Modules),
			labelStyle.Render(result.Modules),
		)
	}

	return nil
}

// DisplayRegions prints one styled line per derived region.
func (t *TUI) DisplayRegions(source string, regions []m.Region) error {
	_, _ = fmt.Fprintf(t.output, "%s\n", sequenceStyle.Render(fmt.Sprintf("Regions derived from %s", source)))

	merged := 0

	for _, region := range regions {
		kind := "unit  "
		if region.Merged {
			kind = "merged"
			merged++
		}

		_, _ = fmt.Fprintf(t.output, "  %s cell (%d, %d) span %dx%d  center (%.2f, %.2f)  size %.2f x %.2f\n",
			checkStyle.Render(kind),
			region.Row, region.Col, region.RowSpan, region.ColSpan,
			region.X, region.Y, region.Width, region.Height,
		)
	}

	_, _ = fmt.Fprintf(t.output, "%s\n", labelStyle.Render(fmt.Sprintf("%d regions, %d merged", len(regions), merged)))

	return nil
}

// EditGrid runs the interactive grid editor until the user quits.
func (t *TUI) EditGrid(session GridSession, gridWidth, gridHeight float64) error {
	program := tea.NewProgram(newGridModel(session, gridWidth, gridHeight), tea.WithOutput(t.output))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("grid editor: %w", err)
	}

	return nil
}
