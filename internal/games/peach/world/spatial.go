package world

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Every query below skips the requesting entity and anything already dead.
// Rectangles are half-open, so sprites that share an edge do not overlap.

// boxAt returns the sprite rectangle anchored at (x, y).
func (w *World) boxAt(x, y float64) core.RectF {
	return core.NewRectF(x, y, w.cfg.Sprite.Width, w.cfg.Sprite.Height)
}

// Bounds returns the sprite rectangle of e.
func (w *World) Bounds(e *Entity) core.RectF {
	return w.boxAt(e.x, e.y)
}

// Overlaps reports whether the sprite boxes of a and b intersect.
// It is symmetric, and an entity never overlaps itself.
func (w *World) Overlaps(a, b *Entity) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	return w.Bounds(a).Intersects(w.Bounds(b))
}

// AnyBlockingAt reports whether a live blocking entity other than req
// occupies the sprite box at (x, y).
func (w *World) AnyBlockingAt(req *Entity, x, y float64) bool {
	box := w.boxAt(x, y)
	for _, other := range w.entities {
		if other == req || !other.alive || !other.Blocking() {
			continue
		}
		if w.Bounds(other).Intersects(box) {
			return true
		}
	}
	return false
}

// SpaceBelow reports whether the one-unit strip of the given width, drop
// units under (x, y), is free of blocking entities.
func (w *World) SpaceBelow(req *Entity, x, y, width, drop float64) bool {
	probe := core.NewRectF(x, y-drop, width, 1)
	for _, other := range w.entities {
		if other == req || !other.alive || !other.Blocking() {
			continue
		}
		if w.Bounds(other).Intersects(probe) {
			return false
		}
	}
	return true
}

// Grounded reports whether e stands on something solid.
func (w *World) Grounded(e *Entity) bool {
	return !w.SpaceBelow(e, e.x, e.y, w.cfg.Sprite.Width, 1)
}

// DamageOverlapping runs the damage protocol from req against every live
// damagable entity it overlaps and reports whether any damage landed.
// Entities spawned by the hits themselves are not considered.
func (w *World) DamageOverlapping(req *Entity) bool {
	landed := false
	n := len(w.entities)
	for i := 0; i < n; i++ {
		other := w.entities[i]
		if other == req || !other.alive || !other.Damagable() {
			continue
		}
		if !w.Overlaps(req, other) {
			continue
		}
		if w.damage(req, other) {
			landed = true
		}
	}
	return landed
}

// MoveTo tries to put req at (x, y). Every live entity overlapping the
// destination is bonked by req; if any of them is blocking the move is
// refused and req stays put. Bonks fire either way, including for a move
// to req's current position.
func (w *World) MoveTo(req *Entity, x, y float64) bool {
	dest := w.boxAt(x, y)
	canMove := true
	n := len(w.entities)
	for i := 0; i < n; i++ {
		other := w.entities[i]
		if other == req || !other.alive {
			continue
		}
		if !w.Bounds(other).Intersects(dest) {
			continue
		}
		w.bonk(req, other)
		if other.Blocking() {
			canMove = false
		}
	}
	if canMove {
		req.x, req.y = x, y
	}
	return canMove
}

// bonk starts the bonk protocol with a as the initiator.
func (w *World) bonk(a, b *Entity) bool {
	if !a.alive || !b.alive {
		return false
	}
	return a.behavior.Bonk(w, a, b)
}

// bonkedBy delivers a bonk from by to target.
func (w *World) bonkedBy(target, by *Entity) bool {
	if !target.alive {
		return false
	}
	return target.behavior.BonkedBy(w, target, by)
}

// damage starts the damage protocol with a as the attacker.
func (w *World) damage(a, b *Entity) bool {
	if !a.alive || !b.alive {
		return false
	}
	return a.behavior.Damage(w, a, b)
}

// damagedBy delivers damage from by to target.
func (w *World) damagedBy(target, by *Entity) bool {
	if !target.alive {
		return false
	}
	return target.behavior.DamagedBy(w, target, by)
}

// touchingPlayer returns Peach when she is alive and overlaps e.
func (w *World) touchingPlayer(e *Entity) (*Entity, bool) {
	peach := w.Player()
	if peach == nil || !peach.alive || !w.Overlaps(e, peach) {
		return nil, false
	}
	return peach, true
}
