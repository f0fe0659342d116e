package game

import "math/rand/v2"

// Piece is the falling piece: a shape in its current orientation and the grid
// coordinates of its top-left origin. Y may be negative above the grid.
type Piece struct {
	Shape Shape
	Type  PieceType
	X, Y  int
}

// Spawner produces the next piece for a grid with the given column count.
type Spawner func(cols int) Piece

// Spawn places a template at the top of the grid, horizontally centered.
func Spawn(t Template, cols int) Piece {
	return Piece{
		Shape: t.Shape,
		Type:  t.Type,
		X:     cols/2 - 1,
		Y:     0,
	}
}

// RandomSpawner picks catalog entries uniformly with r.
func RandomSpawner(catalog Catalog, r *rand.Rand) Spawner {
	if len(catalog) == 0 {
		panic("game: empty catalog")
	}
	return func(cols int) Piece {
		return Spawn(catalog[r.IntN(len(catalog))], cols)
	}
}

// SequenceSpawner cycles through the given types in order. Useful for replays
// and deterministic tests.
func SequenceSpawner(catalog Catalog, types ...PieceType) Spawner {
	byType := make(map[PieceType]Template, len(catalog))
	for _, t := range catalog {
		byType[t.Type] = t
	}

	next := 0
	return func(cols int) Piece {
		t := types[next%len(types)]
		next++
		return Spawn(byType[t], cols)
	}
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece with its shape turned clockwise about the same origin.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Point is an absolute grid coordinate.
type Point struct {
	Row, Col int
}

// Cells returns the absolute coordinates of every occupied piece cell.
func (p Piece) Cells() []Point {
	points := make([]Point, 0, 4)
	for r := range p.Shape {
		for c, filled := range p.Shape[r] {
			if filled {
				points = append(points, Point{Row: p.Y + r, Col: p.X + c})
			}
		}
	}
	return points
}
