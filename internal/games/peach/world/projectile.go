package world

// projectile drives Peach's fireballs and kicked shells. Both hurt anything
// damagable they touch except Peach.
type projectile struct {
	inert
}

func (projectile) Update(w *World, self *Entity) {
	if w.DamageOverlapping(self) {
		self.die()
		return
	}
	fly(w, self)
}

func (projectile) Damage(w *World, self, other *Entity) bool {
	if other.IsPlayer() {
		return false
	}
	return w.damagedBy(other, self)
}

// piranhaFireball only ever hurts Peach.
type piranhaFireball struct {
	inert
}

func (piranhaFireball) Update(w *World, self *Entity) {
	if peach, ok := w.touchingPlayer(self); ok {
		if w.damage(self, peach) {
			self.die()
			return
		}
	}
	fly(w, self)
}

func (piranhaFireball) Damage(w *World, self, other *Entity) bool {
	return w.damagedBy(other, self)
}

// fly moves a projectile one stride; it burns out against a wall.
func fly(w *World, self *Entity) {
	pc := w.cfg.Projectile
	if !w.advance(self, pc.FallStep, pc.MoveStep) {
		self.die()
	}
}
