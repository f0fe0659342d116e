package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/plus3/blockfall/game"
)

// SampleRate is the playback rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator waveform.
type Wave uint8

const (
	Sine Wave = iota
	Square
)

// Note is one tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Attack and release ramps applied to every note so cues start and end
// without clicks.
const (
	attack  = 4 * time.Millisecond
	release = 30 * time.Millisecond
)

// Pattern returns the notes played for a notice. A nil pattern is silent.
func Pattern(n game.Notice) []Note {
	switch n.Kind {
	case game.NoticeStarted:
		return []Note{
			{Freq: 523.25, Duration: 70 * time.Millisecond, Wave: Sine},
			{Freq: 659.25, Duration: 70 * time.Millisecond, Wave: Sine},
			{Freq: 783.99, Duration: 110 * time.Millisecond, Wave: Sine},
		}
	case game.NoticeLocked:
		return []Note{{Freq: 110, Duration: 40 * time.Millisecond, Wave: Square}}
	case game.NoticeLinesCleared:
		// One rising step per cleared line.
		notes := make([]Note, 0, n.Lines)
		for i := range n.Lines {
			notes = append(notes, Note{
				Freq:     880 * math.Pow(2, float64(i)*4/12),
				Duration: 60 * time.Millisecond,
				Wave:     Sine,
			})
		}
		return notes
	case game.NoticeLevelUp:
		return []Note{
			{Freq: 987.77, Duration: 80 * time.Millisecond, Wave: Square},
			{Freq: 1318.51, Duration: 160 * time.Millisecond, Wave: Square},
		}
	case game.NoticeGameOver:
		return []Note{
			{Freq: 392, Duration: 150 * time.Millisecond, Wave: Square},
			{Freq: 311.13, Duration: 150 * time.Millisecond, Wave: Square},
			{Freq: 196, Duration: 400 * time.Millisecond, Wave: Square},
		}
	default:
		return nil
	}
}

// Streamer renders a pattern at the given linear volume (0..1). It returns
// nil for an empty pattern.
func Streamer(notes []Note, volume float64) beep.Streamer {
	if len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, newTone(note, SampleRate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume maps a linear volume onto effects.Volume, whose scale is
// logarithmic. Zero is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// tone is an enveloped oscillator that ends after a fixed number of samples.
type tone struct {
	wave    Wave
	step    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(n Note, rate beep.SampleRate) *tone {
	total := rate.N(n.Duration)
	return &tone{
		wave:    n.Wave,
		step:    n.Freq / float64(rate),
		total:   total,
		attack:  min(rate.N(attack), total/2),
		release: min(rate.N(release), total/2),
	}
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case Square:
			if t.phase < 0.5 {
				v = 0.5
			} else {
				v = -0.5
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
		t.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *tone) Err() error { return nil }

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}
