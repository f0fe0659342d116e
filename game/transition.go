package game

import "time"

// TimerAction tells the Session what to do with the gravity timer.
type TimerAction uint8

const (
	TimerKeep TimerAction = iota
	TimerArm
	TimerDisarm
)

// Outcome describes the side effects of a Transition.
type Outcome struct {
	// Changed is set when anything a renderer shows has changed.
	Changed bool

	Locked       bool
	LinesCleared int
	LevelUp      bool
	GameOver     bool

	Timer    TimerAction
	Interval time.Duration
}

// Transition computes the state that follows ev. It is a pure function of
// its inputs apart from the spawner, and never mutates s.Grid.
func Transition(s State, ev Event, spawn Spawner) (State, Outcome) {
	var out Outcome

	switch ev {
	case EventStart:
		if s.Phase == PhaseRunning {
			return s, out
		}
		s = State{
			Phase: PhaseRunning,
			Level: 1,
			Grid:  NewGrid(s.Grid.Cols(), s.Grid.Rows()),
		}
		out.Changed = true
		out.Timer = TimerArm
		out.Interval = DropInterval(s.Level)
		return spawnNext(s, out, spawn)

	case EventReset:
		s.Phase = PhaseIdle
		s.Grid = NewGrid(s.Grid.Cols(), s.Grid.Rows())
		s.Piece = Piece{}
		s.HasPiece = false
		out.Changed = true
		out.Timer = TimerDisarm
		return s, out
	}

	if s.Phase != PhaseRunning || !s.HasPiece {
		return s, out
	}

	switch ev {
	case EventMoveLeft:
		return shift(s, -1)

	case EventMoveRight:
		return shift(s, 1)

	case EventRotate:
		rotated := s.Piece.Rotated()
		if Collides(rotated, 0, 0, s.Grid) {
			return s, out
		}
		s.Piece = rotated
		out.Changed = true
		return s, out

	case EventSoftDrop, EventTick:
		if !Collides(s.Piece, 0, 1, s.Grid) {
			s.Piece = s.Piece.Moved(0, 1)
			out.Changed = true
			return s, out
		}
		return lockIn(s, out, spawn)

	case EventHardDrop:
		s.Piece = s.Piece.Moved(0, DropDistance(s.Piece, s.Grid))
		return lockIn(s, out, spawn)
	}

	return s, out
}

func shift(s State, dx int) (State, Outcome) {
	if Collides(s.Piece, dx, 0, s.Grid) {
		return s, Outcome{}
	}
	s.Piece = s.Piece.Moved(dx, 0)
	return s, Outcome{Changed: true}
}

// lockIn merges the piece into a copy of the grid, clears lines, applies
// scoring and spawns the next piece.
func lockIn(s State, out Outcome, spawn Spawner) (State, Outcome) {
	grid := s.Grid.Clone()
	for _, p := range s.Piece.Cells() {
		if p.Row >= 0 {
			grid.Set(p.Row, p.Col, CellOf(s.Piece.Type))
		}
	}

	cleared := grid.ClearFullLines()
	s.Grid = grid
	s.Lines += cleared
	s.Score += cleared * LinePoints

	out.Changed = true
	out.Locked = true
	out.LinesCleared = cleared

	// one level per lock-in, even if the clear crossed several thresholds
	if cleared > 0 && s.Score >= s.Level*LevelThreshold {
		s.Level++
		out.LevelUp = true
		out.Timer = TimerArm
		out.Interval = DropInterval(s.Level)
	}

	return spawnNext(s, out, spawn)
}

func spawnNext(s State, out Outcome, spawn Spawner) (State, Outcome) {
	s.Piece = spawn(s.Grid.Cols())
	s.HasPiece = true

	if Collides(s.Piece, 0, 0, s.Grid) {
		s.Phase = PhaseGameOver
		out.GameOver = true
		out.Timer = TimerDisarm
		out.Interval = 0
	}
	return s, out
}
