package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

const hudWidth = 180

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{32, 32, 42, 255}
	outlineColor    = color.RGBA{90, 90, 110, 255}
	ghostColor      = color.RGBA{255, 255, 255, 48}
	shadeColor      = color.RGBA{0, 0, 0, 170}
)

var pieceColors = map[game.PieceType]color.RGBA{
	game.PieceI: {80, 200, 230, 255},
	game.PieceT: {170, 90, 210, 255},
	game.PieceL: {240, 150, 50, 255},
	game.PieceO: {240, 220, 70, 255},
}

// PieceColor returns the fill color for a piece type.
func PieceColor(t game.PieceType) color.RGBA {
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return color.RGBA{200, 200, 200, 255}
}

// RenderSystem draws the board, the HUD, popups and the banner onto the
// Frame singleton. It runs on the draw scheduler.
type RenderSystem struct {
	Frame  ecs.Singleton[Frame]
	Board  ecs.Singleton[Board]
	Layout ecs.Singleton[Layout]
	Sound  ecs.Singleton[Sound]

	Banners ecs.Query[struct{ *Banner }]
	Popups  ecs.Query[struct{ *Popup }]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	f := s.Frame.Get()
	board := s.Board.Get()
	layout := s.Layout.Get()
	if f == nil || f.Screen == nil || board == nil || layout == nil {
		return
	}

	screen := f.Screen
	screen.Fill(backgroundColor)

	snap := board.Session.Snapshot()
	ox, oy := layout.BoardOrigin()
	size := float32(layout.CellSize)
	w, h := float32(snap.Cols)*size, float32(snap.Rows)*size

	vector.DrawFilledRect(screen, ox, oy, w, h, wellColor, false)
	vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 2, outlineColor, false)

	cell := func(row, col int, clr color.Color) {
		x := ox + float32(col)*size
		y := oy + float32(row)*size
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
	}

	for row := range snap.Rows {
		for col := range snap.Cols {
			switch {
			case snap.PieceAt(row, col):
				cell(row, col, PieceColor(snap.Piece.Type))
			case snap.GhostAt(row, col):
				cell(row, col, ghostColor)
			default:
				if t, ok := snap.At(row, col).PieceType(); ok {
					cell(row, col, PieceColor(t))
				}
			}
		}
	}

	hx := int(ox+w) + 24
	hy := int(oy)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), hx, hy)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL\n%d", snap.Level), hx, hy+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), hx, hy+80)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED\n%dms", snap.Interval.Milliseconds()), hx, hy+120)

	if snap.Phase == game.PhaseIdle {
		ebitenutil.DebugPrintAt(screen, "Press Enter\nto start", hx, hy+180)
	}
	if sound := s.Sound.Get(); sound != nil {
		state := "on"
		if !sound.Config.Sound.Enabled {
			state = "off"
		}
		ebitenutil.DebugPrintAt(screen, "Sound "+state+" (M)", hx, int(oy+h)-16)
	}

	py := hy + 240
	for p := range s.Popups.Iter() {
		ebitenutil.DebugPrintAt(screen, p.Popup.Text, hx, py)
		py += 20
	}

	for b := range s.Banners.Iter() {
		by := oy + h/2 - 30
		vector.DrawFilledRect(screen, ox, by, w, 60, shadeColor, false)
		ebitenutil.DebugPrintAt(screen, b.Banner.Title, int(ox)+16, int(by)+10)
		ebitenutil.DebugPrintAt(screen, b.Banner.Detail, int(ox)+16, int(by)+26)
		ebitenutil.DebugPrintAt(screen, "Enter to play again", int(ox)+16, int(by)+42)
	}
}
