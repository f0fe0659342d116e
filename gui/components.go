package gui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/settings"
)

// Board is the singleton holding the running session and the frame-driven
// gravity timer it was built with.
type Board struct {
	Session *game.Session
	Timer   *game.ManualTimer
}

// Layout is the singleton with the board geometry in pixels.
type Layout struct {
	CellSize int
	Margin   int
}

// BoardOrigin is the top-left pixel of the playfield.
func (l Layout) BoardOrigin() (x, y float32) {
	return float32(l.Margin), float32(l.Margin)
}

// ScreenSize is the window size needed for a cols×rows board and the HUD.
func (l Layout) ScreenSize(cols, rows int) (w, h int) {
	return cols*l.CellSize + 2*l.Margin + hudWidth, rows*l.CellSize + 2*l.Margin
}

// Frame is the singleton holding the image being drawn this frame.
type Frame struct {
	Screen *ebiten.Image
}

// Inbox collects session notices between frames. It is registered as a
// session observer through its singleton pointer.
type Inbox struct {
	Notices []game.Notice
}

func (b *Inbox) Render(game.Snapshot) {}

func (b *Inbox) Notify(n game.Notice) {
	b.Notices = append(b.Notices, n)
}

// Drain returns the queued notices and empties the inbox.
func (b *Inbox) Drain() []game.Notice {
	out := b.Notices
	b.Notices = nil
	return out
}

// Banner is the game-over modal.
type Banner struct {
	Title  string
	Detail string
}

// Popup is a short-lived message drawn over the HUD.
type Popup struct {
	Text      string
	Remaining float64
}

// Sound is the singleton behind the mute toggle.
type Sound struct {
	Cues   *audio.Cues
	Store  *settings.Store
	Config settings.Config
}

// Toggle flips sound on or off and persists the choice.
func (s *Sound) Toggle() {
	s.Config.Sound.Enabled = !s.Config.Sound.Enabled
	if s.Cues != nil {
		s.Cues.SetEnabled(s.Config.Sound.Enabled)
	}
	log.Printf("[GUI] Sound enabled: %v", s.Config.Sound.Enabled)

	if s.Store == nil {
		return
	}
	if err := s.Store.Save(settings.PreferencesOf(s.Config)); err != nil {
		log.Printf("[GUI] Warning: %v", err)
	}
}

// RegisterComponents registers the entity components of the package.
// Singletons need no registration.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Banner](registry)
	ecs.RegisterComponent[Popup](registry)
}
