// Package game implements the falling-block engine: the shape catalog, the
// grid, pieces, collision checks and the Session state machine that ties
// them to a gravity timer. Presentation lives in other packages and talks to
// a Session only through Events and the Observer interface.
package game

import (
	"fmt"
	"strings"
)

// PieceType identifies a catalog shape. Grid cells store PieceType+1.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceT
	PieceL
	PieceO
)

var pieceNames = [...]string{"I", "T", "L", "O"}

// Letter returns the single-letter name of the piece type.
func (t PieceType) Letter() string {
	if int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return fmt.Sprintf("?%d", t)
}

// DisplayName is the presentation identifier for the piece type, e.g. "piece-T".
func (t PieceType) DisplayName() string {
	return "piece-" + t.Letter()
}

// Shape is an occupancy matrix indexed [row][col]. Shapes are treated as
// immutable: every transform allocates a new matrix.
type Shape [][]bool

// NewShape builds a shape from rows of '#' (filled) and '.' (empty).
// All rows must have the same width.
func NewShape(rows ...string) Shape {
	if len(rows) == 0 {
		panic("game: shape needs at least one row")
	}

	shape := make(Shape, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			panic("game: ragged shape row " + row)
		}
		shape[r] = make([]bool, len(row))
		for c, ch := range row {
			shape[r][c] = ch == '#'
		}
	}
	return shape
}

// Rows returns the shape height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the shape width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Filled reports whether the cell at (row, col) is occupied.
func (s Shape) Filled(row, col int) bool {
	return s[row][col]
}

// Rotate returns the shape turned 90° clockwise: row c of the result reads
// column c of s from the last row to the first.
func (s Shape) Rotate() Shape {
	rotated := make(Shape, s.Cols())
	for c := range rotated {
		rotated[c] = make([]bool, 0, s.Rows())
		for r := s.Rows() - 1; r >= 0; r-- {
			rotated[c] = append(rotated[c], s[r][c])
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s {
		if r > 0 {
			b.WriteByte('/')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Template pairs a piece type with its spawn orientation.
type Template struct {
	Type  PieceType
	Shape Shape
}

// Catalog is the set of pieces a session draws from.
type Catalog []Template

var standard = Catalog{
	{Type: PieceI, Shape: NewShape("####")},
	{Type: PieceT, Shape: NewShape("###", ".#.")},
	{Type: PieceL, Shape: NewShape("###", "#..")},
	{Type: PieceO, Shape: NewShape("##", "##")},
}

// Standard returns the four-piece catalog (I, T, L, O). The returned slice
// is shared and must not be modified.
func Standard() Catalog {
	return standard
}
