package peach

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/world"
)

// sounder receives audio cues.
type sounder interface {
	PlaySound(s world.Sound)
}

var (
	soundEnabled bool
	soundVolume  = 0.4
	speakerOnce  sync.Once
	speaker      *audio.Player
)

// SetSoundEnabled turns speaker output on for games reset afterwards.
func SetSoundEnabled(on bool) {
	soundEnabled = on
}

// soundSink opens the speaker the first time a game asks for sound.
// Without a usable device the game stays silent.
func soundSink() sounder {
	if !soundEnabled {
		return nil
	}
	speakerOnce.Do(func() {
		p := audio.NewPlayer(soundVolume)
		if err := p.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
			return
		}
		speaker = p
	})
	if speaker == nil {
		return nil
	}
	return speaker
}

// CloseSound silences the speaker, if it was opened.
func CloseSound() {
	if speaker != nil {
		speaker.Close()
	}
}

// hud is the simulation's host: it keeps the score and the power-up
// status, and forwards cues to the speaker.
type hud struct {
	score  int
	status world.Status
	sound  sounder
	cues   []world.Sound // Raised during the current frame
}

func newHUD(sound sounder) *hud {
	return &hud{sound: sound}
}

func (h *hud) PlaySound(s world.Sound) {
	logger.Debug("cue", "sound", s)
	h.cues = append(h.cues, s)
	if h.sound != nil {
		h.sound.PlaySound(s)
	}
}

func (h *hud) IncreaseScore(points int) { h.score += points }

func (h *hud) UpdateStatus(st world.Status) { h.status = st }

// statusLine formats the line shown above the playfield.
func statusLine(lives, level, score int, st world.Status) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Lives: %d  Level: %02d  Points: %06d", lives, level, score)
	if st.StarPower {
		sb.WriteString(" StarPower!")
	}
	if st.ShootPower {
		sb.WriteString(" ShootPower!")
	}
	if st.JumpPower {
		sb.WriteString(" JumpPower!")
	}
	return sb.String()
}

// Cues returns the sounds raised during the last frame.
func (g *Game) Cues() []world.Sound {
	if g.hud == nil {
		return nil
	}
	out := make([]world.Sound, len(g.hud.cues))
	copy(out, g.hud.cues)
	return out
}
