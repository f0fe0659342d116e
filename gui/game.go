// Package gui is the windowed front end. The session lives in a Board
// singleton of an ECS world; an update scheduler turns input and frame time
// into session events, and a draw scheduler renders the board each frame.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/settings"
)

const (
	windowTitle = "blockfall"
	margin      = 20
)

// Options configures New.
type Options struct {
	Config settings.Config
	// Store persists the mute toggle. May be nil.
	Store *settings.Store
	// Cues plays sounds for session notices. May be nil.
	Cues *audio.Cues
}

// Game implements ebiten.Game.
type Game struct {
	storage *ecs.Storage
	update  *ecs.Scheduler
	draw    *ecs.Scheduler

	frame   *ecs.Singleton[Frame]
	keymap  *ecs.Singleton[Keymap]
	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]

	width, height int
}

// New builds the world, its systems and an idle session. With
// Config.Debug set it also opens the ImGui backend window.
func New(opts Options) (*Game, error) {
	keymap, err := KeymapFromConfig(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("gui keymap: %w", err)
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	timer := game.NewManualTimer()
	sessionOpts := []game.Option{game.WithTimer(timer)}
	if opts.Config.Seed != 0 {
		sessionOpts = append(sessionOpts, game.WithSeed(opts.Config.Seed))
	}
	session := game.NewSession(sessionOpts...)

	inbox := ecs.NewSingleton(storage, Inbox{})
	session.Observe(inbox.Get())
	if opts.Cues != nil {
		session.Observe(opts.Cues)
	}

	layout := Layout{CellSize: opts.Config.CellSize, Margin: margin}
	ecs.NewSingleton(storage, Board{Session: session, Timer: timer})
	ecs.NewSingleton(storage, layout)
	ecs.NewSingleton(storage, Sound{Cues: opts.Cues, Store: opts.Store, Config: opts.Config})

	g := &Game{
		storage: storage,
		update:  ecs.NewScheduler(storage),
		draw:    ecs.NewScheduler(storage),
		frame:   ecs.NewSingleton(storage, Frame{}),
		keymap:  ecs.NewSingleton(storage, keymap),
	}
	g.width, g.height = layout.ScreenSize(game.Cols, game.Rows)

	if opts.Config.Debug {
		g.backend = ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(windowTitle, g.width, g.height))
		g.update.Register(&debugui.ImguiSystem{})
	}

	g.update.Register(&InputSystem{})
	g.update.Register(&GravitySystem{})
	g.update.Register(&BannerSystem{})
	g.update.Register(&PopupSystem{})
	g.draw.Register(&RenderSystem{})

	if opts.Config.Debug {
		debugui.Spawn(storage, g.update)
		storage.Spawn(debugui.ImguiItem{Render: NewSessionInspector(storage).Render})
	}

	return g, nil
}

// Storage exposes the ECS world.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

func (g *Game) Update() error {
	if !g.keymap.Get().Bound(ebiten.KeyEscape) && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.Get().BeginFrame()
	}
	g.update.Once(1 / float64(ebiten.TPS()))
	if g.backend != nil {
		g.backend.Get().EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Get().Screen = screen
	g.draw.Once(0)

	if g.backend != nil {
		g.backend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Get().Layout(g.width, g.height)
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	if g.backend == nil {
		ebiten.SetWindowSize(g.width, g.height)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
