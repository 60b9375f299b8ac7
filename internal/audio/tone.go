package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape of a note.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Note is one synthesized tone: a pitch held for a duration.
type Note struct {
	Freq float64
	Dur  time.Duration
	Wave Wave
}

// Cue is a sequence of notes played back to back.
type Cue []Note

// Duration returns the total length of the cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c {
		d += n.Dur
	}
	return d
}

// attack and release are clamped to a quarter of the note each.
const (
	attack  = 4 * time.Millisecond
	release = 20 * time.Millisecond
)

// tone generates a single enveloped note.
type tone struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	total    int
	att      int
	rel      int
}

func newTone(n Note, rate beep.SampleRate) *tone {
	total := rate.N(n.Dur)
	return &tone{
		freq:  n.Freq,
		wave:  n.Wave,
		rate:  rate,
		total: total,
		att:   min(rate.N(attack), total/4),
		rel:   min(rate.N(release), total/4),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}

		val := t.sample() * t.envelope()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(t.phase-0.5)
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) envelope() float64 {
	if t.att > 0 && t.position < t.att {
		return float64(t.position) / float64(t.att)
	}
	if remaining := t.total - t.position; t.rel > 0 && remaining < t.rel {
		return float64(remaining) / float64(t.rel)
	}
	return 1
}

// Streamer renders the cue at the given sample rate.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c))
	for _, n := range c {
		parts = append(parts, newTone(n, rate))
	}
	return beep.Seq(parts...)
}
