package game

// Collides reports whether the piece, shifted by (dx, dy), leaves the grid
// horizontally, falls past the bottom, or overlaps an occupied cell. Cells
// above the grid are only checked against the side walls.
func Collides(p Piece, dx, dy int, g *Grid) bool {
	for r := range p.Shape {
		for c, filled := range p.Shape[r] {
			if !filled {
				continue
			}

			col := p.X + c + dx
			row := p.Y + r + dy

			if col < 0 || col >= g.Cols() || row >= g.Rows() {
				return true
			}

			if row >= 0 && g.Occupied(row, col) {
				return true
			}
		}
	}
	return false
}

// DropDistance returns how many rows the piece can fall before it is blocked.
func DropDistance(p Piece, g *Grid) int {
	d := 0
	for !Collides(p, 0, d+1, g) {
		d++
	}
	return d
}
