package game

import "time"

// Timer is the gravity clock owned by a Session. Arm always replaces any
// previous schedule; a Timer never delivers ticks for two intervals at once.
type Timer interface {
	Arm(interval time.Duration)
	Disarm()
	// Interval reports the armed period.
	Interval() (time.Duration, bool)
}

// ManualTimer is a Timer advanced by the caller, typically once per frame.
type ManualTimer struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
	arms     int
}

func NewManualTimer() *ManualTimer {
	return &ManualTimer{}
}

func (t *ManualTimer) Arm(interval time.Duration) {
	if interval <= 0 {
		panic("game: gravity interval must be positive")
	}
	t.interval = interval
	t.elapsed = 0
	t.armed = true
	t.arms++
}

func (t *ManualTimer) Disarm() {
	t.armed = false
	t.elapsed = 0
}

func (t *ManualTimer) Interval() (time.Duration, bool) {
	return t.interval, t.armed
}

// Arms returns how many times the timer has been armed.
func (t *ManualTimer) Arms() int {
	return t.arms
}

// Advance moves the clock forward by dt and calls fire once per elapsed
// interval. If fire re-arms or disarms the timer, the remaining time is
// discarded. It returns the number of ticks fired.
func (t *ManualTimer) Advance(dt time.Duration, fire func()) int {
	if !t.armed {
		return 0
	}

	t.elapsed += dt
	fired := 0
	for t.armed && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fired++
		fire()
	}
	return fired
}
