package gui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

// SessionInspector is a debug window showing the live session and offering
// buttons for each event.
type SessionInspector struct {
	board *ecs.Singleton[Board]
}

// NewSessionInspector binds the inspector to the Board singleton.
func NewSessionInspector(storage *ecs.Storage) *SessionInspector {
	return &SessionInspector{board: ecs.NewSingleton[Board](storage)}
}

var inspectorEvents = []game.Event{
	game.EventStart, game.EventReset, game.EventTick,
	game.EventMoveLeft, game.EventMoveRight, game.EventRotate,
	game.EventSoftDrop, game.EventHardDrop,
}

// Render draws the window. It must run inside an ImGui frame.
func (si *SessionInspector) Render() {
	board := si.board.Get()
	if board == nil || board.Session == nil {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(520, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := board.Session.Snapshot()
	interval, armed := board.Timer.Interval()

	imgui.Text("Phase: " + snap.Phase.String())
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	if armed {
		imgui.Text("Gravity: " + interval.String())
	} else {
		imgui.Text("Gravity: disarmed")
	}
	imgui.Text(fmt.Sprintf("Timer arms: %d", board.Timer.Arms()))
	if snap.HasPiece {
		imgui.Text("Piece: " + snap.Piece.Type.DisplayName())
		imgui.Text(fmt.Sprintf("Ghost row: %d", snap.GhostY))
	}

	imgui.Separator()
	for i, ev := range inspectorEvents {
		if i%3 != 0 {
			imgui.SameLine()
		}
		if imgui.Button(ev.String()) {
			board.Session.Handle(ev)
		}
	}

	imgui.End()
}
