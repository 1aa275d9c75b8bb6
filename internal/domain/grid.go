package domain

import (
	"fmt"
	"sort"

	m "github.com/emoryluqian/LumosX-Generator/internal/model"
)

// Grid is the merge/split state machine for a rectangular cell matrix. It is
// the sole owner of the cell flags and the transient selection set; both are
// mutated only through its operations, and every operation validates all of
// its preconditions before touching state. A Grid is not safe for concurrent
// use; callers serialize access to a given instance.
type Grid struct {
	rows     int
	cols     int
	cells    [][]m.CellState
	selected map[m.Coord]struct{}
}

// NewGrid returns a grid of rows by cols unmerged cells with an empty
// selection. Dimension bounds are the caller's responsibility.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Initialize(rows, cols)

	return g
}

// Initialize (re)allocates the cell matrix to all-unmerged and clears the
// selection. Called whenever dimensions change. Idempotent.
func (g *Grid) Initialize(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.cells = make([][]m.CellState, rows)

	for r := range g.cells {
		row := make([]m.CellState, cols)
		for c := range row {
			row[c] = m.CellUnmerged
		}

		g.cells[r] = row
	}

	g.selected = make(map[m.Coord]struct{})
}

// Rows returns the current row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the current column count.
func (g *Grid) Cols() int { return g.cols }

// Cells returns a copy of the cell flag matrix.
func (g *Grid) Cells() [][]m.CellState {
	cells := make([][]m.CellState, g.rows)
	for r := range g.cells {
		cells[r] = append([]m.CellState(nil), g.cells[r]...)
	}

	return cells
}

// Selected returns the selection as coordinates sorted by (row, col).
func (g *Grid) Selected() []m.Coord {
	coords := make([]m.Coord, 0, len(g.selected))
	for coord := range g.selected {
		coords = append(coords, coord)
	}

	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}

		return coords[i].Col < coords[j].Col
	})

	return coords
}

// IsSelected reports whether the cell at (row, col) is currently selected.
func (g *Grid) IsSelected(row, col int) bool {
	_, ok := g.selected[m.Coord{Row: row, Col: col}]
	return ok
}

// ToggleSelection adds the coordinate to the selection if absent and removes
// it if present. Cell flags are untouched.
func (g *Grid) ToggleSelection(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: cell (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	coord := m.Coord{Row: row, Col: col}
	if _, ok := g.selected[coord]; ok {
		delete(g.selected, coord)
	} else {
		g.selected[coord] = struct{}{}
	}

	return nil
}

// Merge marks the selected cells as merged. The selection must hold at least
// two cells and form a contiguous span within a single row or a single
// column. On success the selection is cleared; on any failure the grid is
// left untouched.
func (g *Grid) Merge() error {
	if len(g.selected) < 2 {
		return fmt.Errorf("%w: select at least two cells to merge, got %d", ErrInsufficientSelection, len(g.selected))
	}

	coords := g.Selected()

	rowsUsed := make(map[int]struct{})
	colsUsed := make(map[int]struct{})

	for _, coord := range coords {
		rowsUsed[coord.Row] = struct{}{}
		colsUsed[coord.Col] = struct{}{}
	}

	switch {
	case len(rowsUsed) == 1:
		row := coords[0].Row
		for i, coord := range coords {
			if coord.Col != coords[0].Col+i {
				return fmt.Errorf("%w: columns %d..%d in row %d have a gap", ErrNonContiguous, coords[0].Col, coords[len(coords)-1].Col, row)
			}
		}

		for _, coord := range coords {
			g.cells[row][coord.Col] = m.CellMerged
		}
	case len(colsUsed) == 1:
		col := coords[0].Col
		for i, coord := range coords {
			if coord.Row != coords[0].Row+i {
				return fmt.Errorf("%w: rows %d..%d in column %d have a gap", ErrNonContiguous, coords[0].Row, coords[len(coords)-1].Row, col)
			}
		}

		for _, coord := range coords {
			g.cells[coord.Row][col] = m.CellMerged
		}
	default:
		return fmt.Errorf("%w: merge one row or one column at a time", ErrMixedAxisSelection)
	}

	g.selected = make(map[m.Coord]struct{})

	return nil
}

// Split sets every selected cell back to unmerged, regardless of its prior
// flag, and clears the selection. No contiguity requirement.
func (g *Grid) Split() error {
	if len(g.selected) == 0 {
		return fmt.Errorf("%w: select cells to split", ErrEmptySelection)
	}

	for coord := range g.selected {
		g.cells[coord.Row][coord.Col] = m.CellUnmerged
	}

	g.selected = make(map[m.Coord]struct{})

	return nil
}

// Regions derives the rectangles to render from the current merge state,
// scanning rows top to bottom and columns left to right. A merged cell not
// yet attributed starts a region that greedily extends rightward along its
// row, then downward while every cell of the next row within the region's
// column range is merged. Unmerged cells each emit their own 1x1 region.
//
// The greedy scan relies on merges being produced only by Merge, which
// keeps every merged shape a plain axis-aligned rectangle.
//
// Physical placement matches the marker geometry: the grid of gridWidth by
// gridHeight units is centered on the origin and each region reports its
// center and dimensions.
func (g *Grid) Regions(gridWidth, gridHeight float64) []m.Region {
	cellWidth := gridWidth / float64(g.cols)
	cellHeight := gridHeight / float64(g.rows)
	startX := -gridWidth / 2
	startY := -gridHeight / 2

	consumed := make(map[m.Coord]struct{})

	var regions []m.Region

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if _, ok := consumed[m.Coord{Row: r, Col: c}]; ok {
				continue
			}

			rowSpan, colSpan := 1, 1
			merged := g.cells[r][c] == m.CellMerged

			if merged {
				for c+colSpan < g.cols && g.cells[r][c+colSpan] == m.CellMerged {
					colSpan++
				}

				for r+rowSpan < g.rows && g.rowRangeMerged(r+rowSpan, c, colSpan) {
					rowSpan++
				}
			}

			for rr := r; rr < r+rowSpan; rr++ {
				for cc := c; cc < c+colSpan; cc++ {
					consumed[m.Coord{Row: rr, Col: cc}] = struct{}{}
				}
			}

			width := float64(colSpan) * cellWidth
			height := float64(rowSpan) * cellHeight

			regions = append(regions, m.Region{
				Row:     r,
				Col:     c,
				RowSpan: rowSpan,
				ColSpan: colSpan,
				Merged:  merged,
				X:       startX + float64(c)*cellWidth + width/2,
				Y:       startY + float64(r)*cellHeight + height/2,
				Width:   width,
				Height:  height,
			})
		}
	}

	return regions
}

func (g *Grid) rowRangeMerged(row, col, colSpan int) bool {
	for c := col; c < col+colSpan; c++ {
		if g.cells[row][c] != m.CellMerged {
			return false
		}
	}

	return true
}

// Layout snapshots the merge state into its serializable form: dimensions
// plus one span per merged rectangle.
func (g *Grid) Layout() m.Layout {
	layout := m.Layout{Rows: g.rows, Cols: g.cols}

	for _, region := range g.Regions(float64(g.cols), float64(g.rows)) {
		if !region.Merged {
			continue
		}

		layout.Spans = append(layout.Spans, m.Span{
			Row:     region.Row,
			Col:     region.Col,
			RowSpan: region.RowSpan,
			ColSpan: region.ColSpan,
		})
	}

	return layout
}

// ApplyLayout reinitializes the grid to the layout's dimensions and replays
// its spans through the regular selection and merge operations, so only
// states the state machine itself can produce are representable. Multi-row
// spans are merged row by row; the region derivation reunites them.
func ApplyLayout(g *Grid, layout m.Layout) error {
	g.Initialize(layout.Rows, layout.Cols)

	for _, span := range layout.Spans {
		if err := applySpan(g, span); err != nil {
			return fmt.Errorf("span at (%d, %d): %w", span.Row, span.Col, err)
		}
	}

	return nil
}

func applySpan(g *Grid, span m.Span) error {
	if span.RowSpan < 1 || span.ColSpan < 1 {
		return fmt.Errorf("%w: empty span", ErrInvalidInput)
	}

	if span.ColSpan == 1 {
		return mergeRun(g, span.Row, span.Col, span.RowSpan, false)
	}

	for r := span.Row; r < span.Row+span.RowSpan; r++ {
		if err := mergeRun(g, r, span.Col, span.ColSpan, true); err != nil {
			return err
		}
	}

	return nil
}

// mergeRun selects and merges a straight run of cells.
func mergeRun(g *Grid, row, col, length int, horizontal bool) error {
	if length == 1 {
		// A 1x1 merged remnant (left behind by a partial split) cannot be
		// produced by a single Merge; replay it by merging with a neighbor
		// and splitting the neighbor back out.
		return mergeLoneCell(g, row, col)
	}

	for i := 0; i < length; i++ {
		r, c := row, col+i
		if !horizontal {
			r, c = row+i, col
		}

		if err := g.ToggleSelection(r, c); err != nil {
			return err
		}
	}

	return g.Merge()
}

func mergeLoneCell(g *Grid, row, col int) error {
	neighborRow, neighborCol := row, col+1
	if neighborCol >= g.cols {
		neighborCol = col - 1
	}

	if neighborCol < 0 {
		neighborRow, neighborCol = row+1, col
		if neighborRow >= g.rows {
			neighborRow = row - 1
		}
	}

	if neighborRow < 0 || neighborRow >= g.rows || neighborCol < 0 || neighborCol >= g.cols {
		return fmt.Errorf("%w: cell (%d, %d) has no neighbor to merge through", ErrOutOfBounds, row, col)
	}

	neighborMerged := g.cells[neighborRow][neighborCol] == m.CellMerged

	if err := g.ToggleSelection(row, col); err != nil {
		return err
	}

	if err := g.ToggleSelection(neighborRow, neighborCol); err != nil {
		return err
	}

	if err := g.Merge(); err != nil {
		return err
	}

	if neighborMerged {
		return nil
	}

	if err := g.ToggleSelection(neighborRow, neighborCol); err != nil {
		return err
	}

	return g.Split()
}
