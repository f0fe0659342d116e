// Package audio plays short generated tones for session notices. Cues is a
// game.Observer; attach it to a Session or Loop and it stays silent until
// Init succeeds.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/game"
)

// Cues turns notices into sounds.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewCues returns an uninitialized Cues.
func NewCues(enabled bool, volume float64) *Cues {
	return &Cues{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Init opens the audio device. On failure the Cues stays silent and the
// error is returned for the caller to log.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true

	log.Printf("[Audio] Speaker ready at %d Hz", SampleRate)
	return nil
}

// Close stops every playing cue.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Ready reports whether the speaker is open.
func (c *Cues) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// SetEnabled mutes or unmutes future cues.
func (c *Cues) SetEnabled(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
}

// Enabled reports whether cues are played.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetVolume sets the linear volume (0..1) of future cues.
func (c *Cues) SetVolume(volume float64) {
	c.mu.Lock()
	c.volume = min(max(volume, 0), 1)
	c.mu.Unlock()
}

// Render implements game.Observer.
func (c *Cues) Render(game.Snapshot) {}

// Notify implements game.Observer.
func (c *Cues) Notify(n game.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.enabled {
		return
	}

	s := Streamer(Pattern(n), c.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}
