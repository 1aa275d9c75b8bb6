package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayEncodeResults prints one table row per encoded sequence. With
// showBars it appends a block glyph bar preview per encoded sequence.
func (s *SimpleUI) DisplayEncodeResults(results []m.EncodeResult, showBars bool) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Sequence", "Check", "Modules"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	// Module strings are 95 characters; keep them on one line.
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	failed := 0

	for _, result := range results {
		if result.Err != nil {
			failed++

			table.Append([]string{result.Sequence, "-", fmt.Sprintf("error: %v", result.Err)})

			continue
		}

		table.Append([]string{result.Sequence, fmt.Sprintf("%d", result.Checksum), result.Modules})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(results)),
		"",
		fmt.Sprintf("Failed %d", failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if showBars {
		for _, result := range results {
			if result.Err != nil {
				continue
			}

			s.printf("\n%s\n%s\n", result.Sequence, RenderBars(result.Modules))
		}
	}

	return nil
}

// DisplayRegions prints the derived regions as a table.
func (s *SimpleUI) DisplayRegions(source string, regions []m.Region) error {
	s.printf("Regions derived from %s:\n", source)
	s.printf("\n%s", regionTable(regions))

	return nil
}

// EditGrid is the non-interactive fallback: without a terminal there is no
// session to drive, so the current state and its regions are printed once.
func (s *SimpleUI) EditGrid(session GridSession, gridWidth, gridHeight float64) error {
	s.printf("interactive grid editing requires a terminal; showing current state\n\n")
	s.printf("%s\n", renderGridText(session))
	s.printf("%s", regionTable(session.Regions(gridWidth, gridHeight)))

	return nil
}

func regionTable(regions []m.Region) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Cell", "Span", "Kind", "Center", "Size"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	merged := 0

	for _, region := range regions {
		kind := "unit"
		if region.Merged {
			kind = "merged"
			merged++
		}

		table.Append([]string{
			fmt.Sprintf("(%d, %d)", region.Row, region.Col),
			fmt.Sprintf("%dx%d", region.RowSpan, region.ColSpan),
			kind,
			fmt.Sprintf("(%.2f, %.2f)", region.X, region.Y),
			fmt.Sprintf("%.2f x %.2f", region.Width, region.Height),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Regions %d", len(regions)),
		"",
		fmt.Sprintf("Merged %d", merged),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// renderGridText draws the cell matrix as plain text, one glyph per cell:
// M for merged, S for selected, . for an untouched cell.
func renderGridText(session GridSession) string {
	var b strings.Builder

	cells := session.Cells()

	for r, row := range cells {
		for c, state := range row {
			glyph := "."

			switch {
			case session.IsSelected(r, c):
				glyph = "S"
			case state == m.CellMerged:
				glyph = "M"
			}

			if c > 0 {
				b.WriteString(" ")
			}

			b.WriteString(glyph)
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
