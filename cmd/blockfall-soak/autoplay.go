package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

// Player is one headless session and the bot driving it.
type Player struct {
	Session *game.Session
	Timer   *game.ManualTimer
	Rand    *rand.Rand
	Tally   *Tally
}

// Tally accumulates results for one player. It observes the session.
type Tally struct {
	Games     int
	Lines     int
	Moves     int
	BestScore int
	BestLevel int
}

func (t *Tally) Render(game.Snapshot) {}

func (t *Tally) Notify(n game.Notice) {
	switch n.Kind {
	case game.NoticeLinesCleared:
		t.Lines += n.Lines
	case game.NoticeGameOver:
		t.Games++
		t.BestScore = max(t.BestScore, n.Score)
		t.BestLevel = max(t.BestLevel, n.Level)
	}
}

// Violations is a singleton counting failed state checks.
type Violations struct {
	Count int
	First string
}

// NewPlayer builds a player whose pieces and moves derive from seed.
func NewPlayer(seed uint64) Player {
	timer := game.NewManualTimer()
	tally := &Tally{}
	return Player{
		Session: game.NewSession(
			game.WithTimer(timer),
			game.WithSeed(seed),
			game.WithObserver(tally),
		),
		Timer: timer,
		Rand:  rand.New(rand.NewPCG(seed, ^seed)),
		Tally: tally,
	}
}

// Weighted move table. Hard drops are rare so games last a while.
var moves = []struct {
	event  game.Event
	weight int
}{
	{game.EventNone, 30},
	{game.EventMoveLeft, 20},
	{game.EventMoveRight, 20},
	{game.EventRotate, 15},
	{game.EventSoftDrop, 10},
	{game.EventHardDrop, 5},
}

func pickMove(r *rand.Rand) game.Event {
	total := 0
	for _, m := range moves {
		total += m.weight
	}
	n := r.IntN(total)
	for _, m := range moves {
		if n < m.weight {
			return m.event
		}
		n -= m.weight
	}
	return game.EventNone
}

// AutoplaySystem restarts finished games, makes one random move per player
// per frame and advances gravity by the frame time.
type AutoplaySystem struct {
	Players ecs.Query[struct{ *Player }]
}

func (s *AutoplaySystem) Execute(frame *ecs.UpdateFrame) {
	dt := time.Duration(frame.DeltaTime * float64(time.Second))

	for p := range s.Players.Iter() {
		player := p.Player
		if player.Session.Phase() != game.PhaseRunning {
			player.Session.Handle(game.EventStart)
			continue
		}

		if ev := pickMove(player.Rand); ev != game.EventNone {
			player.Session.Handle(ev)
			player.Tally.Moves++
		}
		player.Timer.Advance(dt, func() {
			player.Session.Handle(game.EventTick)
		})
	}
}

// CheckSystem verifies every session against the scoring, speed and
// collision rules after the frame's moves.
type CheckSystem struct {
	Players    ecs.Query[struct{ *Player }]
	Violations ecs.Singleton[Violations]
}

func (s *CheckSystem) Execute(frame *ecs.UpdateFrame) {
	v := s.Violations.Get()
	for p := range s.Players.Iter() {
		if err := Check(p.Player.Session); err != nil && v != nil {
			if v.Count == 0 {
				v.First = fmt.Sprintf("frame %d: %v", frame.Frame, err)
			}
			v.Count++
		}
	}
}

// Check returns the first broken rule of a session, if any.
func Check(session *game.Session) error {
	snap := session.Snapshot()

	if snap.Score != snap.Lines*game.LinePoints {
		return fmt.Errorf("score %d for %d lines", snap.Score, snap.Lines)
	}
	if snap.Level < 1 || snap.Level > snap.Score/game.LevelThreshold+1 {
		return fmt.Errorf("level %d with score %d", snap.Level, snap.Score)
	}

	interval, armed := session.Timer().Interval()
	if armed != (snap.Phase == game.PhaseRunning) {
		return fmt.Errorf("timer armed=%v in phase %s", armed, snap.Phase)
	}
	if armed && interval != game.DropInterval(snap.Level) {
		return fmt.Errorf("timer interval %s at level %d", interval, snap.Level)
	}

	if snap.Phase != game.PhaseRunning || !snap.HasPiece {
		return nil
	}
	for _, c := range snap.Piece.Cells() {
		if c.Col < 0 || c.Col >= snap.Cols || c.Row >= snap.Rows {
			return fmt.Errorf("piece cell %v out of bounds", c)
		}
		if c.Row >= 0 && snap.At(c.Row, c.Col) != game.Empty {
			return fmt.Errorf("piece overlaps locked cell %v", c)
		}
	}
	return nil
}
