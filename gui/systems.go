package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/ecs/debugui"
	"github.com/plus3/blockfall/game"
)

// popupSeconds is how long line-clear and level-up messages stay up.
const popupSeconds = 1.2

// InputSystem turns key presses into session events.
type InputSystem struct {
	Board  ecs.Singleton[Board]
	Keymap ecs.Singleton[Keymap]
	Sound  ecs.Singleton[Sound]
	Imgui  ecs.Singleton[debugui.ImguiInputState]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	if st := s.Imgui.Get(); st != nil && st.WantCaptureKeyboard {
		return
	}

	board := s.Board.Get()
	keymap := s.Keymap.Get()
	if board == nil || keymap == nil {
		return
	}

	for _, b := range keymap.Bindings {
		if Fires(inpututil.KeyPressDuration(b.Key), Repeats(b.Event)) {
			board.Session.Handle(b.Event)
		}
	}

	if sound := s.Sound.Get(); sound != nil && !keymap.Bound(MuteKey) && inpututil.IsKeyJustPressed(MuteKey) {
		sound.Toggle()
	}
}

// GravitySystem advances the board's timer by the frame time and feeds the
// ticks it fires back into the session.
type GravitySystem struct {
	Board ecs.Singleton[Board]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	if board == nil {
		return
	}

	dt := time.Duration(frame.DeltaTime * float64(time.Second))
	board.Timer.Advance(dt, func() {
		board.Session.Handle(game.EventTick)
	})
}

// BannerSystem consumes the inbox: it shows the game-over banner, removes it
// when a new game starts, and queues popups for cleared lines and level ups.
type BannerSystem struct {
	Inbox   ecs.Singleton[Inbox]
	Banners ecs.Query[struct {
		ecs.EntityId
		*Banner
	}]
}

func (s *BannerSystem) Execute(frame *ecs.UpdateFrame) {
	inbox := s.Inbox.Get()
	if inbox == nil {
		return
	}

	for _, n := range inbox.Drain() {
		switch n.Kind {
		case game.NoticeStarted, game.NoticeReset:
			for b := range s.Banners.Iter() {
				frame.Commands.Delete(b.EntityId)
			}
		case game.NoticeGameOver:
			frame.Commands.Spawn(Banner{
				Title:  "GAME OVER",
				Detail: fmt.Sprintf("Score %d  Level %d", n.Score, n.Level),
			})
		case game.NoticeLinesCleared:
			frame.Commands.Spawn(Popup{
				Text:      fmt.Sprintf("+%d", n.Lines*game.LinePoints),
				Remaining: popupSeconds,
			})
		case game.NoticeLevelUp:
			frame.Commands.Spawn(Popup{
				Text:      fmt.Sprintf("LEVEL %d", n.Level),
				Remaining: popupSeconds,
			})
		}
	}
}

// PopupSystem ages popups and removes expired ones.
type PopupSystem struct {
	Popups ecs.Query[struct {
		ecs.EntityId
		*Popup
	}]
}

func (s *PopupSystem) Execute(frame *ecs.UpdateFrame) {
	for p := range s.Popups.Iter() {
		p.Popup.Remaining -= frame.DeltaTime
		if p.Popup.Remaining <= 0 {
			frame.Commands.Delete(p.EntityId)
		}
	}
}
