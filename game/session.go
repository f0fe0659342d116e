package game

import (
	"math/rand/v2"
	"time"
)

// NoticeKind classifies notable session events for observers.
type NoticeKind uint8

const (
	NoticeStarted NoticeKind = iota
	NoticeReset
	NoticeLocked
	NoticeLinesCleared
	NoticeLevelUp
	NoticeGameOver
)

// Notice is delivered to observers alongside render updates.
type Notice struct {
	Kind  NoticeKind
	Lines int
	Level int
	Score int
}

// Observer receives session output. Render is called after every event that
// changed the state; Notify precedes it for each notable effect.
type Observer interface {
	Render(Snapshot)
	Notify(Notice)
}

// Session owns a game: its state, its gravity timer and its observers.
// A Session is not safe for concurrent use; feed it from a single goroutine
// or through a Loop.
type Session struct {
	state     State
	timer     Timer
	spawn     Spawner
	observers []Observer
}

// Option configures a Session.
type Option func(*Session)

// WithTimer sets the gravity timer. The default is a ManualTimer.
func WithTimer(t Timer) Option {
	return func(s *Session) {
		s.timer = t
	}
}

// WithSeed seeds the random piece picker.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.spawn = RandomSpawner(Standard(), rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	}
}

// WithSpawner replaces the piece picker.
func WithSpawner(spawn Spawner) Option {
	return func(s *Session) {
		s.spawn = spawn
	}
}

// WithSize sets the grid dimensions.
func WithSize(cols, rows int) Option {
	return func(s *Session) {
		s.state = NewState(cols, rows)
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// NewSession returns an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		state: NewState(Cols, Rows),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.timer == nil {
		s.timer = NewManualTimer()
	}
	if s.spawn == nil {
		s.spawn = RandomSpawner(Standard(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	return s
}

// Observe registers an additional observer.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Handle applies one event and runs its side effects.
func (s *Session) Handle(ev Event) Outcome {
	next, out := Transition(s.state, ev, s.spawn)
	s.state = next

	switch out.Timer {
	case TimerArm:
		s.timer.Disarm()
		s.timer.Arm(out.Interval)
	case TimerDisarm:
		s.timer.Disarm()
	}

	if !out.Changed {
		return out
	}

	for _, n := range s.notices(ev, out) {
		for _, o := range s.observers {
			o.Notify(n)
		}
	}

	snap := s.state.Snapshot()
	for _, o := range s.observers {
		o.Render(snap)
	}
	return out
}

func (s *Session) notices(ev Event, out Outcome) []Notice {
	base := Notice{Level: s.state.Level, Score: s.state.Score}

	var notices []Notice
	add := func(kind NoticeKind, lines int) {
		n := base
		n.Kind = kind
		n.Lines = lines
		notices = append(notices, n)
	}

	switch ev {
	case EventStart:
		add(NoticeStarted, 0)
	case EventReset:
		add(NoticeReset, 0)
	}
	if out.Locked {
		add(NoticeLocked, 0)
	}
	if out.LinesCleared > 0 {
		add(NoticeLinesCleared, out.LinesCleared)
	}
	if out.LevelUp {
		add(NoticeLevelUp, 0)
	}
	if out.GameOver {
		add(NoticeGameOver, 0)
	}
	return notices
}

// Snapshot returns a read-only copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Timer returns the gravity timer.
func (s *Session) Timer() Timer {
	return s.timer
}

// DropInterval returns the gravity period for the current level.
func (s *Session) DropInterval() time.Duration {
	return DropInterval(s.state.Level)
}
