package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

const (
	cellWidth = 2
	hudGap    = 3
)

var pieceColors = map[game.PieceType]tcell.Color{
	game.PieceI: tcell.NewRGBColor(80, 200, 230),
	game.PieceT: tcell.NewRGBColor(170, 90, 210),
	game.PieceL: tcell.NewRGBColor(240, 150, 50),
	game.PieceO: tcell.NewRGBColor(240, 220, 70),
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws snapshots onto a tcell screen. It is a game.Observer and
// must be driven from a single goroutine.
type Renderer struct {
	screen  tcell.Screen
	message string
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Notify keeps a one-line message for the next render.
func (r *Renderer) Notify(n game.Notice) {
	switch n.Kind {
	case game.NoticeLinesCleared:
		r.message = fmt.Sprintf("+%d", n.Lines*game.LinePoints)
	case game.NoticeLevelUp:
		r.message = fmt.Sprintf("LEVEL %d", n.Level)
	case game.NoticeStarted, game.NoticeReset:
		r.message = ""
	}
}

// Render redraws the whole screen.
func (r *Renderer) Render(snap game.Snapshot) {
	s := r.screen
	s.Clear()

	right := 1 + snap.Cols*cellWidth
	bottom := 1 + snap.Rows
	for y := 0; y <= bottom; y++ {
		s.SetContent(0, y, '│', nil, frameStyle)
		s.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := 0; x <= right; x++ {
		s.SetContent(x, bottom, '─', nil, frameStyle)
	}
	s.SetContent(0, bottom, '└', nil, frameStyle)
	s.SetContent(right, bottom, '┘', nil, frameStyle)

	for row := range snap.Rows {
		for col := range snap.Cols {
			x, y := 1+col*cellWidth, row
			switch {
			case snap.PieceAt(row, col):
				r.text(x, y, pieceStyle(snap.Piece.Type), "[]")
			case snap.GhostAt(row, col):
				r.text(x, y, ghostStyle, "::")
			default:
				if t, ok := snap.At(row, col).PieceType(); ok {
					r.text(x, y, pieceStyle(t), "[]")
				}
			}
		}
	}

	hx := right + hudGap
	r.text(hx, 0, textStyle, fmt.Sprintf("SCORE %d", snap.Score))
	r.text(hx, 1, textStyle, fmt.Sprintf("LEVEL %d", snap.Level))
	r.text(hx, 2, textStyle, fmt.Sprintf("LINES %d", snap.Lines))
	r.text(hx, 3, textStyle, fmt.Sprintf("SPEED %dms", snap.Interval.Milliseconds()))
	if r.message != "" {
		r.text(hx, 5, textStyle, r.message)
	}

	switch snap.Phase {
	case game.PhaseIdle:
		r.text(hx, 7, textStyle, "Enter to start")
	case game.PhaseGameOver:
		r.text(hx, 7, alertStyle, fmt.Sprintf("GAME OVER  score %d", snap.Score))
		r.text(hx, 8, textStyle, "Enter to play again")
	}
	r.text(hx, bottom, frameStyle, "Ctrl-C quits")

	s.Show()
}

func (r *Renderer) text(x, y int, style tcell.Style, str string) {
	for i, ch := range []rune(str) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func pieceStyle(t game.PieceType) tcell.Style {
	c, ok := pieceColors[t]
	if !ok {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c).Bold(true)
}
