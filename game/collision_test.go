package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
)

func TestCollidesWithBounds(t *testing.T) {
	g := game.NewGrid(game.Cols, game.Rows)

	for _, tmpl := range game.Standard() {
		for _, shape := range []game.Shape{tmpl.Shape, tmpl.Shape.Rotate()} {
			for x := -4; x <= game.Cols+1; x++ {
				for y := -3; y <= game.Rows+1; y++ {
					p := game.Piece{Shape: shape, Type: tmpl.Type, X: x, Y: y}

					outside := false
					for _, cell := range p.Cells() {
						if cell.Col < 0 || cell.Col >= game.Cols || cell.Row >= game.Rows {
							outside = true
						}
					}

					name := fmt.Sprintf("%s %s at (%d,%d)", tmpl.Type.Letter(), shape, x, y)
					assert.Equal(t, outside, game.Collides(p, 0, 0, g), name)
				}
			}
		}
	}
}

func TestCollidesWithLockedCells(t *testing.T) {
	g := game.NewGrid(game.Cols, game.Rows)
	g.Set(10, 5, game.CellOf(game.PieceT))

	p := game.Piece{Shape: game.NewShape("##", "##"), Type: game.PieceO, X: 4, Y: 8}

	assert.False(t, game.Collides(p, 0, 0, g))
	assert.True(t, game.Collides(p, 0, 1, g))
	assert.True(t, game.Collides(p, 1, 1, g))
	assert.False(t, game.Collides(p, -1, 1, g))
	assert.False(t, game.Collides(p, 2, 1, g))
}

func TestCollidesAboveGrid(t *testing.T) {
	g := game.NewGrid(game.Cols, game.Rows)
	fillRow(g, 0, 1)

	vertical := game.Piece{Shape: game.NewShape("#", "#", "#", "#"), X: 3, Y: -4}

	assert.False(t, game.Collides(vertical, 0, 0, g), "rows above the grid skip occupancy")
	assert.True(t, game.Collides(vertical, 0, 1, g))
	assert.True(t, game.Collides(vertical, -4, 0, g), "side walls still apply above the grid")
}

func TestDropDistance(t *testing.T) {
	g := game.NewGrid(game.Cols, game.Rows)
	p := game.Spawn(template(t, game.PieceI), game.Cols)

	assert.Equal(t, 19, game.DropDistance(p, g))

	g.Set(12, 6, 1)
	assert.Equal(t, 11, game.DropDistance(p, g))
}
