package game

import (
	"context"
	"time"
)

const defaultQueueSize = 64

// Loop serializes input events and gravity ticks onto one goroutine. It is
// the Session's Timer: arming replaces the running ticker, so there is never
// more than one tick source.
type Loop struct {
	session *Session
	events  chan Event
	ticker  *time.Ticker
	period  time.Duration
}

// NewLoop creates a Loop around a new Session built from opts. Any WithTimer
// option is overridden.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		events: make(chan Event, defaultQueueSize),
	}
	opts = append(opts, WithTimer(l))
	l.session = NewSession(opts...)
	return l
}

// Session returns the session driven by the loop. It must only be touched
// from the Run goroutine once Run has started.
func (l *Loop) Session() *Session {
	return l.session
}

// Post queues an event without blocking. It reports false if the queue is
// full and the event was dropped.
func (l *Loop) Post(ev Event) bool {
	select {
	case l.events <- ev:
		return true
	default:
		return false
	}
}

// Run processes queued events and ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Disarm()

	for {
		var tick <-chan time.Time
		if l.ticker != nil {
			tick = l.ticker.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.events:
			l.session.Handle(ev)
		case <-tick:
			l.session.Handle(EventTick)
		}
	}
}

// Arm implements Timer. Only called from the Run goroutine.
func (l *Loop) Arm(interval time.Duration) {
	l.Disarm()
	l.ticker = time.NewTicker(interval)
	l.period = interval
}

// Disarm implements Timer.
func (l *Loop) Disarm() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// Interval implements Timer.
func (l *Loop) Interval() (time.Duration, bool) {
	return l.period, l.ticker != nil
}
