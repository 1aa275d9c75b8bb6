// Package controller provides output surfaces for marker generation results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// GridSession is the mutable grid surface an interactive editor drives.
// The domain grid satisfies it; declaring the interface on the consumer
// side keeps this package decoupled from the domain package.
type GridSession interface {
	Rows() int
	Cols() int
	Cells() [][]m.CellState
	Selected() []m.Coord
	IsSelected(row, col int) bool
	Initialize(rows, cols int)
	ToggleSelection(row, col int) error
	Merge() error
	Split() error
	Regions(gridWidth, gridHeight float64) []m.Region
}

// UI defines the interface for presenting results to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayEncodeResults(results []m.EncodeResult, showBars bool) error
	DisplayRegions(source string, regions []m.Region) error
	EditGrid(session GridSession, gridWidth, gridHeight float64) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
