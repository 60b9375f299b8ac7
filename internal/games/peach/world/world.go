// Package world is the Super Peach Sisters simulation core: the live entity
// set, the overlap queries every interaction goes through, and the per-kind
// state machines. It is single-threaded and deterministic for a given seed
// and key sequence. Rendering, audio, scoring totals and level files live
// outside and are reached through Env.
package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/levels"
)

// Populate errors for grids without exactly one Peach.
var (
	ErrNoPlayer    = errors.New("world: level has no player")
	ErrManyPlayers = errors.New("world: level has more than one player")
)

// Key is the single input key delivered to Peach for one tick.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyFire
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyFire:
		return "fire"
	default:
		return "none"
	}
}

// Sound is an audio cue raised by the simulation.
type Sound uint8

const (
	SoundJump Sound = iota
	SoundBonk
	SoundHurt
	SoundDie
	SoundPowerUp
	SoundPowerUpAppears
	SoundFire
	SoundPiranhaFire
	SoundKick
	SoundFinishedLevel
	SoundGameOver
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundBonk:
		return "bonk"
	case SoundHurt:
		return "hurt"
	case SoundDie:
		return "die"
	case SoundPowerUp:
		return "power_up"
	case SoundPowerUpAppears:
		return "power_up_appears"
	case SoundFire:
		return "fire"
	case SoundPiranhaFire:
		return "piranha_fire"
	case SoundKick:
		return "kick"
	case SoundFinishedLevel:
		return "finished_level"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the result of one tick.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomePlayerDied
	OutcomeLevelFinished
	OutcomePlayerWon
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlayerDied:
		return "player_died"
	case OutcomeLevelFinished:
		return "level_finished"
	case OutcomePlayerWon:
		return "player_won"
	default:
		return "continue"
	}
}

// Status is the power-up part of the status line, published after every
// completed tick.
type Status struct {
	StarPower  bool
	ShootPower bool
	JumpPower  bool
}

// Env is everything the simulation needs from its host.
type Env interface {
	PlaySound(s Sound)
	IncreaseScore(points int)
	UpdateStatus(st Status)
}

type nopEnv struct{}

func (nopEnv) PlaySound(Sound)     {}
func (nopEnv) IncreaseScore(int)   {}
func (nopEnv) UpdateStatus(Status) {}

// World owns every entity of one level attempt.
type World struct {
	cfg config.PeachConfig
	env Env
	rng *rand.Rand

	entities []*Entity      // Update order; new entities are appended
	index    map[ID]*Entity // Live and not-yet-pruned entities
	nextID   ID
	player   ID
	tick     uint64
	key      Key

	playerDied     bool
	levelCompleted bool
	playerWon      bool
}

// New creates an empty world. A nil env discards all notifications and a
// nil rng is seeded with 0.
func New(cfg config.PeachConfig, env Env, rng *rand.Rand) *World {
	if env == nil {
		env = nopEnv{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &World{
		cfg:    cfg,
		env:    env,
		rng:    rng,
		index:  make(map[ID]*Entity),
		nextID: 1,
	}
}

// Config returns the tuning the world runs with.
func (w *World) Config() config.PeachConfig { return w.cfg }

// Add registers a new entity at (x, y). Entities added during a tick take
// their first turn later in the same tick.
func (w *World) Add(kind Kind, x, y float64, facing Facing) *Entity {
	e := &Entity{
		id:     w.nextID,
		kind:   kind,
		x:      x,
		y:      y,
		facing: facing,
		alive:  true,
	}
	w.nextID++
	e.behavior = newBehavior(w, kind)
	w.entities = append(w.entities, e)
	w.index[e.id] = e
	if kind == KindPeach {
		w.player = e.id
	}
	return e
}

// Populate adds one entity per non-empty grid cell, bottom row first.
func (w *World) Populate(g *levels.Grid) error {
	players := 0
	for gy := 0; gy < g.Height; gy++ {
		for gx := 0; gx < g.Width; gx++ {
			code := g.At(gx, gy)
			if code == levels.Empty {
				continue
			}
			kind, ok := kindForCode(code)
			if !ok {
				return fmt.Errorf("world: unknown tile %q at (%d,%d)", rune(code), gx, gy)
			}
			if kind == KindPeach {
				players++
				if players > 1 {
					return fmt.Errorf("%w: second at (%d,%d)", ErrManyPlayers, gx, gy)
				}
			}
			x := float64(gx) * w.cfg.Sprite.Width
			y := float64(gy) * w.cfg.Sprite.Height
			w.Add(kind, x, y, w.initialFacing(kind))
		}
	}
	if players == 0 {
		return ErrNoPlayer
	}
	return nil
}

// initialFacing is right for everything except enemies, which pick a side.
func (w *World) initialFacing(kind Kind) Facing {
	if kind.IsEnemy() && w.rng.Intn(2) == 0 {
		return FacingLeft
	}
	return FacingRight
}

func kindForCode(c levels.Code) (Kind, bool) {
	switch c {
	case levels.Block:
		return KindBlock, true
	case levels.Pipe:
		return KindPipe, true
	case levels.StarBlock:
		return KindStarBlock, true
	case levels.FlowerBlock:
		return KindFlowerBlock, true
	case levels.MushroomBlock:
		return KindMushroomBlock, true
	case levels.Goomba:
		return KindGoomba, true
	case levels.Koopa:
		return KindKoopa, true
	case levels.Piranha:
		return KindPiranha, true
	case levels.Peach:
		return KindPeach, true
	case levels.Flag:
		return KindFlag, true
	case levels.Mario:
		return KindMario, true
	default:
		return 0, false
	}
}

// Entity resolves an ID. Pruned or unknown IDs report false.
func (w *World) Entity(id ID) (*Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// Player returns Peach's entity, or nil when the level has none.
func (w *World) Player() *Entity {
	e, ok := w.index[w.player]
	if !ok {
		return nil
	}
	return e
}

// Peach returns Peach's state machine, or nil when the level has none.
func (w *World) Peach() *Peach {
	e := w.Player()
	if e == nil {
		return nil
	}
	p, _ := e.behavior.(*Peach)
	return p
}

// Entities returns the entities in update order. The slice is a copy;
// the entities are not.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Len returns the number of entities, including any dead ones awaiting pruning.
func (w *World) Len() int { return len(w.entities) }

// Ticks returns how many ticks have started.
func (w *World) Ticks() uint64 { return w.tick }

// Status returns Peach's current power-ups.
func (w *World) Status() Status {
	p := w.Peach()
	if p == nil {
		return Status{}
	}
	return Status{
		StarPower:  p.HasStarPower(),
		ShootPower: p.HasShootPower(),
		JumpPower:  p.HasJumpPower(),
	}
}

// Tick gives every live entity one turn in insertion order with key as
// Peach's input. The tick stops as soon as a terminal condition is raised,
// before pruning and before the status update.
func (w *World) Tick(key Key) Outcome {
	w.tick++
	w.key = key

	for i := 0; i < len(w.entities); i++ {
		e := w.entities[i]
		if e.alive {
			e.behavior.Update(w, e)
		}

		switch {
		case w.playerDied:
			w.env.PlaySound(SoundDie)
			return OutcomePlayerDied
		case w.levelCompleted:
			w.env.PlaySound(SoundFinishedLevel)
			return OutcomeLevelFinished
		case w.playerWon:
			w.env.PlaySound(SoundGameOver)
			return OutcomePlayerWon
		}
	}

	w.prune()
	w.env.UpdateStatus(w.Status())
	return OutcomeContinue
}

// prune compacts dead entities out of the update order in place.
func (w *World) prune() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.alive {
			live = append(live, e)
			continue
		}
		delete(w.index, e.id)
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
}

func (w *World) score(points int) {
	w.env.IncreaseScore(points)
}
