package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncRecorder forwards output from the loop goroutine.
type syncRecorder struct {
	mu      sync.Mutex
	renders chan game.Snapshot
	notices []game.Notice
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{renders: make(chan game.Snapshot, 128)}
}

func (r *syncRecorder) Render(s game.Snapshot) {
	select {
	case r.renders <- s:
	default:
	}
}

func (r *syncRecorder) Notify(n game.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *syncRecorder) await(t *testing.T, match func(game.Snapshot) bool) game.Snapshot {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-r.renders:
			if match(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for render")
			return game.Snapshot{}
		}
	}
}

func TestLoopSerializesEvents(t *testing.T) {
	rec := newSyncRecorder()
	loop := game.NewLoop(
		game.WithSpawner(game.SequenceSpawner(game.Standard(), game.PieceO)),
		game.WithObserver(rec),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.True(t, loop.Post(game.EventStart))
	require.True(t, loop.Post(game.EventMoveLeft))
	require.True(t, loop.Post(game.EventHardDrop))

	snap := rec.await(t, func(s game.Snapshot) bool { return s.At(19, 3) != game.Empty })
	assert.Equal(t, game.CellOf(game.PieceO), snap.At(18, 3))
	assert.Equal(t, game.PhaseRunning, snap.Phase)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	_, armed := loop.Interval()
	assert.False(t, armed, "ticker stopped when the loop exits")
}

func TestLoopGravity(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real gravity tick")
	}

	rec := newSyncRecorder()
	loop := game.NewLoop(
		game.WithSpawner(game.SequenceSpawner(game.Standard(), game.PieceT)),
		game.WithObserver(rec),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	loop.Post(game.EventStart)
	snap := rec.await(t, func(s game.Snapshot) bool { return s.HasPiece && s.Piece.Y == 1 })

	assert.Equal(t, game.PieceT, snap.Piece.Type)
}

func TestLoopPostDropsWhenFull(t *testing.T) {
	loop := game.NewLoop()

	accepted := 0
	for range 1000 {
		if loop.Post(game.EventRotate) {
			accepted++
		}
	}

	assert.Less(t, accepted, 1000)
	assert.Positive(t, accepted)
}
