package world

// ID is a stable entity handle. IDs are never reused within a World, so a
// stale ID resolves to nothing instead of to a different entity.
type ID uint64

// Entity is one live object in the level. Kind-specific counters live in the
// behavior value; the fields here are shared by every kind.
type Entity struct {
	id     ID
	kind   Kind
	x, y   float64
	facing Facing
	alive  bool

	behavior Behavior
}

// ID returns the entity's handle.
func (e *Entity) ID() ID { return e.id }

// Kind returns what the entity is.
func (e *Entity) Kind() Kind { return e.kind }

// X returns the left edge in world units.
func (e *Entity) X() float64 { return e.x }

// Y returns the bottom edge in world units.
func (e *Entity) Y() float64 { return e.y }

// Facing returns the horizontal direction the entity looks toward.
func (e *Entity) Facing() Facing { return e.facing }

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool { return e.alive }

// Blocking reports whether the entity is solid for movement.
func (e *Entity) Blocking() bool { return kindTraits[e.kind].blocking }

// Damagable reports whether the entity can receive the damage protocol.
func (e *Entity) Damagable() bool { return kindTraits[e.kind].damagable }

// IsPlayer reports whether the entity is Peach.
func (e *Entity) IsPlayer() bool { return kindTraits[e.kind].player }

// Depth is the draw order; higher depths are drawn first.
func (e *Entity) Depth() int { return kindTraits[e.kind].depth }

// Behavior returns the kind-specific state machine.
func (e *Entity) Behavior() Behavior { return e.behavior }

func (e *Entity) die() { e.alive = false }

func (e *Entity) reverse() { e.facing = e.facing.Reverse() }

// Behavior is the per-kind dispatch table. The world only calls these on
// live entities: Update once per tick, and the pair methods from the bonk
// and damage protocols. A Bonk/Damage call is the initiator's side and
// usually forwards to the target's BonkedBy/DamagedBy.
type Behavior interface {
	Update(w *World, self *Entity)
	Bonk(w *World, self, other *Entity) bool
	BonkedBy(w *World, self, other *Entity) bool
	Damage(w *World, self, other *Entity) bool
	DamagedBy(w *World, self, other *Entity) bool
}

// inert is the default behavior: it never moves and ignores every protocol.
type inert struct{}

func (inert) Update(*World, *Entity)                  {}
func (inert) Bonk(*World, *Entity, *Entity) bool      { return false }
func (inert) BonkedBy(*World, *Entity, *Entity) bool  { return false }
func (inert) Damage(*World, *Entity, *Entity) bool    { return false }
func (inert) DamagedBy(*World, *Entity, *Entity) bool { return false }

// newBehavior builds the state machine for a freshly added entity.
func newBehavior(w *World, kind Kind) Behavior {
	switch kind {
	case KindPeach:
		return newPeach(w.cfg)
	case KindGoomba, KindKoopa:
		return &enemy{}
	case KindPiranha:
		return &piranha{}
	case KindBlock, KindPipe:
		return obstacle{}
	case KindStarBlock:
		return &goodieBlock{items: w.cfg.Goodies.ItemsPerBlock, goodie: KindStar}
	case KindFlowerBlock:
		return &goodieBlock{items: w.cfg.Goodies.ItemsPerBlock, goodie: KindFlower}
	case KindMushroomBlock:
		return &goodieBlock{items: w.cfg.Goodies.ItemsPerBlock, goodie: KindMushroom}
	case KindStar, KindFlower, KindMushroom:
		return goodie{}
	case KindShell, KindPeachFireball:
		return projectile{}
	case KindPiranhaFireball:
		return piranhaFireball{}
	case KindFlag, KindMario:
		return target{}
	default:
		return inert{}
	}
}
