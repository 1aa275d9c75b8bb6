// Package model defines the data structures for marker generation.
package model

// CellState represents the merge flag of a single grid cell.
type CellState string

const (
	// CellUnmerged marks a cell that renders as its own unit rectangle.
	CellUnmerged CellState = "unmerged"
	// CellMerged marks a cell that belongs to a merged rectangular span.
	CellMerged CellState = "merged"
)

// Coord addresses a single cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// Region is a rectangle derived from the grid merge state. It is described
// both in cell space (top-left cell plus spans) and in the caller's physical
// units (center position plus dimensions, with the grid centered on the
// origin). Regions are regenerated on every request and never stored.
type Region struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Merged  bool

	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Span is one merged rectangle as stored in a layout file.
type Span struct {
	Row     int `yaml:"row"`
	Col     int `yaml:"col"`
	RowSpan int `yaml:"rowSpan"`
	ColSpan int `yaml:"colSpan"`
}

// Layout is the host-side serialized form of a grid merge state. The core
// keeps grid state in memory only; layouts exist so the CLI can carry a
// session across invocations.
type Layout struct {
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Spans []Span `yaml:"spans,omitempty"`
}
