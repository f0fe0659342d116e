package gui_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/settings"
)

func TestKeyByNameCoversSettings(t *testing.T) {
	seen := map[ebiten.Key]string{}
	for _, name := range settings.KeyNames() {
		key, ok := gui.KeyByName(name)
		require.True(t, ok, name)

		prev, dup := seen[key]
		assert.False(t, dup, "%s and %s share a key", name, prev)
		seen[key] = name
	}

	_, ok := gui.KeyByName("F13")
	assert.False(t, ok)
}

func TestKeymapFromConfig(t *testing.T) {
	km, err := gui.KeymapFromConfig(settings.Default())
	require.NoError(t, err)

	assert.Len(t, km.Bindings, 8)
	assert.True(t, km.Bound(ebiten.KeySpace))
	assert.True(t, km.Bound(ebiten.KeyS))
	assert.False(t, km.Bound(gui.MuteKey))

	for i := 1; i < len(km.Bindings); i++ {
		assert.Less(t, km.Bindings[i-1].Key, km.Bindings[i].Key, "ordered by key")
	}

	_, err = gui.NewKeymap(map[string]game.Event{"F13": game.EventStart})
	assert.ErrorContains(t, err, `"F13"`)
}

func TestFires(t *testing.T) {
	tests := []struct {
		held   int
		repeat bool
		want   bool
	}{
		{0, true, false},
		{1, false, true},
		{1, true, true},
		{2, true, false},
		{11, true, false},
		{12, true, true},
		{13, true, false},
		{15, true, true},
		{12, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gui.Fires(tt.held, tt.repeat), "held %d repeat %v", tt.held, tt.repeat)
	}
}

func TestRepeats(t *testing.T) {
	assert.True(t, gui.Repeats(game.EventMoveLeft))
	assert.True(t, gui.Repeats(game.EventSoftDrop))
	assert.False(t, gui.Repeats(game.EventRotate))
	assert.False(t, gui.Repeats(game.EventHardDrop))
	assert.False(t, gui.Repeats(game.EventStart))
}

func TestLayoutScreenSize(t *testing.T) {
	l := gui.Layout{CellSize: 30, Margin: 20}

	w, h := l.ScreenSize(game.Cols, game.Rows)
	assert.Equal(t, 640, h)
	assert.Greater(t, w, 10*30+40)
}

func newWorld(t *testing.T) *ecs.Storage {
	t.Helper()
	registry := ecs.NewComponentRegistry()
	gui.RegisterComponents(registry)
	return ecs.NewStorage(registry)
}

func TestGravitySystem(t *testing.T) {
	storage := newWorld(t)

	timer := game.NewManualTimer()
	session := game.NewSession(
		game.WithTimer(timer),
		game.WithSpawner(game.SequenceSpawner(game.Standard(), game.PieceO)),
	)
	session.Handle(game.EventStart)
	ecs.NewSingleton(storage, gui.Board{Session: session, Timer: timer})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&gui.GravitySystem{})

	scheduler.Once(0.5)
	assert.Equal(t, 0, session.Snapshot().Piece.Y)

	scheduler.Once(0.5)
	assert.Equal(t, 1, session.Snapshot().Piece.Y)

	scheduler.Once(2)
	assert.Equal(t, 3, session.Snapshot().Piece.Y)
}

func TestBannerAndPopups(t *testing.T) {
	storage := newWorld(t)
	inbox := ecs.NewSingleton(storage, gui.Inbox{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&gui.BannerSystem{})
	scheduler.Register(&gui.PopupSystem{})

	banners := ecs.NewQuery[struct{ *gui.Banner }](storage)
	popups := ecs.NewQuery[struct{ *gui.Popup }](storage)

	inbox.Get().Notify(game.Notice{Kind: game.NoticeLinesCleared, Lines: 2, Score: 300, Level: 1})
	inbox.Get().Notify(game.Notice{Kind: game.NoticeGameOver, Score: 300, Level: 1})
	scheduler.Once(0)

	assert.Empty(t, inbox.Get().Notices, "inbox drained")

	b, ok := banners.First()
	require.True(t, ok)
	assert.Equal(t, "GAME OVER", b.Banner.Title)
	assert.Equal(t, "Score 300  Level 1", b.Banner.Detail)

	p, ok := popups.First()
	require.True(t, ok)
	assert.Equal(t, "+200", p.Popup.Text)

	t.Run("popups expire", func(t *testing.T) {
		scheduler.Once(1)
		assert.Equal(t, 1, popups.Count())

		scheduler.Once(0.5)
		assert.Equal(t, 0, popups.Count())
	})

	t.Run("new game removes banner", func(t *testing.T) {
		inbox.Get().Notify(game.Notice{Kind: game.NoticeStarted, Level: 1})
		scheduler.Once(0)
		assert.Equal(t, 0, banners.Count())
	})
}

func TestInboxObservesSession(t *testing.T) {
	storage := newWorld(t)
	inbox := ecs.NewSingleton(storage, gui.Inbox{})

	session := game.NewSession(game.WithObserver(inbox.Get()))
	session.Handle(game.EventStart)

	notices := inbox.Get().Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, game.NoticeStarted, notices[0].Kind)
	assert.Empty(t, inbox.Get().Drain())
}

func TestSoundToggle(t *testing.T) {
	sound := gui.Sound{Store: settings.NewStore(nil), Config: settings.Default()}

	sound.Toggle()
	assert.False(t, sound.Config.Sound.Enabled)

	sound.Toggle()
	assert.True(t, sound.Config.Sound.Enabled)
}

func TestNew(t *testing.T) {
	g, err := gui.New(gui.Options{Config: settings.Default()})
	require.NoError(t, err)

	board := ecs.ReadSingleton[gui.Board](g.Storage())
	require.NotNil(t, board)
	assert.Equal(t, game.PhaseIdle, board.Session.Phase())

	cfg := settings.Default()
	cfg.Bindings["rotate"] = []string{"F13"}
	_, err = gui.New(gui.Options{Config: cfg})
	assert.Error(t, err)
}
