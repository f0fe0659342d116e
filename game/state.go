package game

import "time"

//go:generate stringer -type=Phase -trimprefix=Phase

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// Scoring and speed constants.
const (
	LinePoints     = 100
	LevelThreshold = 500

	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
	MinInterval  = 100 * time.Millisecond
)

// DropInterval returns the gravity period for a level.
func DropInterval(level int) time.Duration {
	return max(MinInterval, BaseInterval-time.Duration(level-1)*IntervalStep)
}

// State is the complete game state. Transition never mutates the Grid of the
// State it receives; a new grid is allocated whenever cells change.
type State struct {
	Phase Phase
	Score int
	Level int
	Lines int

	Grid     *Grid
	Piece    Piece
	HasPiece bool
}

// NewState returns an idle state with an empty grid.
func NewState(cols, rows int) State {
	return State{
		Phase: PhaseIdle,
		Level: 1,
		Grid:  NewGrid(cols, rows),
	}
}

// Snapshot is a read-only copy of a State for renderers.
type Snapshot struct {
	Phase Phase
	Score int
	Level int
	Lines int

	Cols, Rows int
	Cells      []Cell

	Piece    Piece
	HasPiece bool
	// GhostY is the row the piece origin would land on after a hard drop.
	GhostY int

	Interval time.Duration
}

// Snapshot copies the state for rendering.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.Phase,
		Score:    s.Score,
		Level:    s.Level,
		Lines:    s.Lines,
		Cols:     s.Grid.Cols(),
		Rows:     s.Grid.Rows(),
		Cells:    s.Grid.Cells(),
		Piece:    s.Piece,
		HasPiece: s.HasPiece,
		Interval: DropInterval(s.Level),
	}
	if s.HasPiece {
		snap.GhostY = s.Piece.Y + DropDistance(s.Piece, s.Grid)
	}
	return snap
}

// At returns the locked cell value at (row, col).
func (s Snapshot) At(row, col int) Cell {
	return s.Cells[row*s.Cols+col]
}

// PieceAt reports whether the falling piece covers (row, col).
func (s Snapshot) PieceAt(row, col int) bool {
	if !s.HasPiece {
		return false
	}
	r, c := row-s.Piece.Y, col-s.Piece.X
	if r < 0 || r >= s.Piece.Shape.Rows() || c < 0 || c >= s.Piece.Shape.Cols() {
		return false
	}
	return s.Piece.Shape.Filled(r, c)
}

// GhostAt reports whether the hard-drop landing position covers (row, col).
func (s Snapshot) GhostAt(row, col int) bool {
	if !s.HasPiece || s.Phase != PhaseRunning {
		return false
	}
	r, c := row-s.GhostY, col-s.Piece.X
	if r < 0 || r >= s.Piece.Shape.Rows() || c < 0 || c >= s.Piece.Shape.Cols() {
		return false
	}
	return s.Piece.Shape.Filled(r, c)
}
