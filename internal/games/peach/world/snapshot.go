package world

import "math"

// EntityState is the flattened view of one entity.
type EntityState struct {
	ID     ID
	Kind   Kind
	X, Y   float64
	Facing Facing
	Alive  bool
}

// Snapshot contains the complete world state for determinism checks and
// headless inspection. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Entities []EntityState

	// Peach counters (zero when the level has no Peach)
	HitPoints       int
	StarTicks       int
	InvincibleTicks int
	RechargeTicks   int
	JumpRemaining   int
	ShootPower      bool
	JumpPower       bool

	// Per-entity counters keyed by ID
	BlockItems   map[ID]int
	FiringDelays map[ID]int
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         w.tick,
		Entities:     make([]EntityState, 0, len(w.entities)),
		BlockItems:   make(map[ID]int),
		FiringDelays: make(map[ID]int),
	}

	for _, e := range w.entities {
		snap.Entities = append(snap.Entities, EntityState{
			ID:     e.id,
			Kind:   e.kind,
			X:      e.x,
			Y:      e.y,
			Facing: e.facing,
			Alive:  e.alive,
		})
		switch b := e.behavior.(type) {
		case *goodieBlock:
			snap.BlockItems[e.id] = b.items
		case *piranha:
			snap.FiringDelays[e.id] = b.firingDelay
		}
	}

	if p := w.Peach(); p != nil {
		snap.HitPoints = p.hitPoints
		snap.StarTicks = p.starTicks
		snap.InvincibleTicks = p.invincibleTicks
		snap.RechargeTicks = p.rechargeTicks
		snap.JumpRemaining = p.remaining
		snap.ShootPower = p.shootPower
		snap.JumpPower = p.jumpPower
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(len(snap.Entities))
	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + uint64(int64(e.Facing)) //#nosec G115 -- hash computation
		h = h*31 + boolBit(e.Alive)

		// Map iteration order is random, so counters are folded in entity order.
		if items, ok := snap.BlockItems[e.ID]; ok {
			h = h*31 + uint64(items) //#nosec G115 -- hash computation
		}
		if delay, ok := snap.FiringDelays[e.ID]; ok {
			h = h*31 + uint64(delay) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + uint64(snap.HitPoints)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StarTicks)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvincibleTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RechargeTicks)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.JumpRemaining)   //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.ShootPower)
	h = h*31 + boolBit(snap.JumpPower)

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
