package peach

import "github.com/vovakirdan/tui-platformer/internal/games/peach/world"

// Snapshot contains the complete run state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  int
	Score int
	Lives int
	Level int
	State string
	World world.Snapshot // Zero when no level is loaded
}

// Snapshot returns the current run state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.ticks,
		Lives: g.lives,
		Level: g.level,
		State: g.state,
	}
	if g.hud != nil {
		snap.Score = g.hud.score
	}
	if g.world != nil {
		snap.World = g.world.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level) //#nosec G115 -- hash computation
	for _, c := range s.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	return h*31 + s.World.Hash()
}
