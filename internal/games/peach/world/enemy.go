package world

import "math"

// enemy drives Goombas and Koopas. Enemies have no health: one hit kills.
type enemy struct {
	inert
}

// Update resolves contact with Peach first; only when there is none does
// the enemy patrol.
func (en *enemy) Update(w *World, self *Entity) {
	if en.contact(w, self) {
		return
	}
	w.patrol(self, w.cfg.Enemy.MoveStep)
}

// contact handles an enemy standing on Peach. A star-powered Peach kicks
// it; otherwise the enemy bonks her.
func (en *enemy) contact(w *World, self *Entity) bool {
	peach, ok := w.touchingPlayer(self)
	if !ok {
		return false
	}
	if p := w.Peach(); p != nil && p.HasStarPower() {
		w.env.PlaySound(SoundKick)
		w.damagedBy(self, peach)
		return true
	}
	w.bonk(self, peach)
	return true
}

// Bonk forwards the collision to the other entity.
func (en *enemy) Bonk(w *World, self, other *Entity) bool {
	return w.bonkedBy(other, self)
}

// BonkedBy only reacts to a star-powered Peach, who kicks the enemy dead.
func (en *enemy) BonkedBy(w *World, self, other *Entity) bool {
	if !other.IsPlayer() {
		return false
	}
	if p := w.Peach(); p == nil || !p.HasStarPower() {
		return false
	}
	w.env.PlaySound(SoundKick)
	return w.damagedBy(self, other)
}

// DamagedBy kills the enemy and awards Peach. A Koopa leaves its shell.
func (en *enemy) DamagedBy(w *World, self, other *Entity) bool {
	w.score(w.cfg.Enemy.KillScore)
	self.die()
	if self.kind == KindKoopa {
		w.Add(KindShell, self.x, self.y, self.facing)
	}
	return true
}

// piranha is a stationary enemy that turns toward Peach and spits fireballs.
type piranha struct {
	enemy
	firingDelay int
}

// FiringDelay returns the ticks left before the piranha may fire again.
func (pr *piranha) FiringDelay() int { return pr.firingDelay }

// Update resolves contact, then tracks and shoots at Peach when she is
// within the vertical detection band.
func (pr *piranha) Update(w *World, self *Entity) {
	if pr.contact(w, self) {
		return
	}
	peach := w.Player()
	if peach == nil || !peach.alive {
		return
	}

	cfg := w.cfg.Piranha
	band := cfg.DetectionBand * w.cfg.Sprite.Height
	if peach.y < self.y-band || peach.y >= self.y+band {
		return
	}
	if peach.x < self.x {
		self.facing = FacingLeft
	} else {
		self.facing = FacingRight
	}

	if pr.firingDelay > 0 {
		pr.firingDelay--
		return
	}
	if math.Abs(self.x-peach.x) >= cfg.FiringRange*w.cfg.Sprite.Width {
		return
	}
	pr.firingDelay = cfg.FiringDelay
	w.env.PlaySound(SoundPiranhaFire)
	w.Add(KindPiranhaFireball, self.x, self.y, self.facing)
}
