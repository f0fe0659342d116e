package game

import "fmt"

// Default playfield dimensions.
const (
	Cols = 10
	Rows = 20
)

// Cell is a grid value: Empty or a PieceType+1.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// CellOf returns the grid value written for a locked piece of type t.
func CellOf(t PieceType) Cell {
	return Cell(t) + 1
}

// PieceType returns the piece type stored in the cell, if any.
func (c Cell) PieceType() (PieceType, bool) {
	if c == Empty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Grid is a fixed-size row-major matrix of cells. Row 0 is the top.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", cols, rows))
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d,%d) outside %dx%d grid", row, col, g.cols, g.rows))
	}
	return row*g.cols + col
}

// At returns the value of the cell. Panics when out of bounds.
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Occupied reports whether the cell holds a piece. Panics when out of bounds.
func (g *Grid) Occupied(row, col int) bool {
	return g.At(row, col) != Empty
}

// Set writes a cell value. Panics when out of bounds, including rows above
// the visible grid.
func (g *Grid) Set(row, col int, value Cell) {
	g.cells[g.index(row, col)] = value
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		cols:  g.cols,
		rows:  g.rows,
		cells: make([]Cell, len(g.cells)),
	}
	copy(clone.cells, g.cells)
	return clone
}

// Cells returns a row-major copy of every cell.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) rowFull(row int) bool {
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top, and returns how many rows were removed.
func (g *Grid) ClearFullLines() int {
	cleared := 0
	for row := g.rows - 1; row >= 0; row-- {
		if !g.rowFull(row) {
			continue
		}

		copy(g.cells[g.cols:(row+1)*g.cols], g.cells[:row*g.cols])
		clear(g.cells[:g.cols])
		cleared++

		// the row shifted into this index has not been examined yet
		row++
	}
	return cleared
}
