// Package audio plays the simulation's sound cues through the system
// speaker. Every cue is synthesized on the fly; there are no sample files.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/games/peach/world"
)

// SampleRate is the output rate handed to the speaker.
const SampleRate = beep.SampleRate(48000)

const (
	c4 = 261.63
	e4 = 329.63
	g4 = 392.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// cues maps every simulation sound to its recipe.
var cues = map[world.Sound]Cue{
	world.SoundJump:           {{Freq: 440, Dur: ms(40), Wave: WaveSquare}, {Freq: 660, Dur: ms(60), Wave: WaveSquare}},
	world.SoundBonk:           {{Freq: 110, Dur: ms(70), Wave: WaveSaw}},
	world.SoundHurt:           {{Freq: 330, Dur: ms(60), Wave: WaveSaw}, {Freq: 220, Dur: ms(90), Wave: WaveSaw}},
	world.SoundDie:            {{Freq: g4, Dur: ms(120), Wave: WaveTriangle}, {Freq: e4, Dur: ms(120), Wave: WaveTriangle}, {Freq: c4, Dur: ms(300), Wave: WaveTriangle}},
	world.SoundPowerUp:        {{Freq: c5, Dur: ms(60), Wave: WaveSquare}, {Freq: e5, Dur: ms(60), Wave: WaveSquare}, {Freq: g5, Dur: ms(60), Wave: WaveSquare}, {Freq: c6, Dur: ms(120), Wave: WaveSquare}},
	world.SoundPowerUpAppears: {{Freq: g4, Dur: ms(50), Wave: WaveTriangle}, {Freq: c5, Dur: ms(80), Wave: WaveTriangle}},
	world.SoundFire:           {{Freq: 880, Dur: ms(30), Wave: WaveSaw}, {Freq: 440, Dur: ms(40), Wave: WaveSaw}},
	world.SoundPiranhaFire:    {{Freq: 180, Dur: ms(80), Wave: WaveSquare}},
	world.SoundKick:           {{Freq: 150, Dur: ms(30), Wave: WaveSine}, {Freq: 90, Dur: ms(50), Wave: WaveSine}},
	world.SoundFinishedLevel:  {{Freq: c5, Dur: ms(100), Wave: WaveTriangle}, {Freq: e5, Dur: ms(100), Wave: WaveTriangle}, {Freq: g5, Dur: ms(100), Wave: WaveTriangle}, {Freq: c6, Dur: ms(400), Wave: WaveTriangle}},
	world.SoundGameOver:       {{Freq: c5, Dur: ms(200), Wave: WaveSine}, {Freq: g4, Dur: ms(200), Wave: WaveSine}, {Freq: e4, Dur: ms(200), Wave: WaveSine}, {Freq: c4, Dur: ms(600), Wave: WaveSine}},
}

// CueFor returns the recipe for s.
func CueFor(s world.Sound) (Cue, bool) {
	c, ok := cues[s]
	return c, ok
}

// Player mixes cues into the speaker. The zero value is not usable;
// call NewPlayer. A player that was never initialized ignores every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
}

// NewPlayer creates a player at the given linear volume (0 mutes, 1 is unity).
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Played returns how many cues reached the mixer.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// PlaySound queues the cue for s.
func (p *Player) PlaySound(s world.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	cue, ok := cues[s]
	if !ok {
		return
	}

	streamer := withVolume(cue.Streamer(SampleRate), p.volume)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.played++
}

// withVolume scales s linearly; log2(0) is -Inf, so zero means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
