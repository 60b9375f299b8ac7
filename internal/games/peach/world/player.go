package world

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Peach is the player's state machine: hit points, power-ups and timers.
type Peach struct {
	inert
	jump

	hitPoints       int
	starTicks       int
	invincibleTicks int
	rechargeTicks   int
	shootPower      bool
	jumpPower       bool
}

func newPeach(cfg config.PeachConfig) *Peach {
	return &Peach{hitPoints: cfg.Player.HitPoints}
}

// HitPoints returns the remaining hit points.
func (p *Peach) HitPoints() int { return p.hitPoints }

// StarTicks returns how many ticks of star power remain.
func (p *Peach) StarTicks() int { return p.starTicks }

// HasStarPower reports whether Peach is currently star-powered.
func (p *Peach) HasStarPower() bool { return p.starTicks > 0 }

// HasShootPower reports whether Peach can throw fireballs.
func (p *Peach) HasShootPower() bool { return p.shootPower }

// HasJumpPower reports whether Peach jumps higher.
func (p *Peach) HasJumpPower() bool { return p.jumpPower }

// Invincible reports whether Peach is in the immunity window after a hit.
func (p *Peach) Invincible() bool { return p.invincibleTicks > 0 }

// Jumping reports whether an upward movement is in progress.
func (p *Peach) Jumping() bool { return p.remaining > 0 }

// GiveStarPower adds ticks of star power.
func (p *Peach) GiveStarPower(ticks int) { p.starTicks += ticks }

// GiveShootPower grants the fireball ability.
func (p *Peach) GiveShootPower() { p.shootPower = true }

// GiveJumpPower grants the higher jump.
func (p *Peach) GiveJumpPower() { p.jumpPower = true }

// SetHitPoints overwrites the hit point count.
func (p *Peach) SetHitPoints(hp int) { p.hitPoints = hp }

// Update runs Peach's turn: timers, then vertical motion, then input.
func (p *Peach) Update(w *World, self *Entity) {
	pc := w.cfg.Player

	if p.starTicks > 0 {
		p.starTicks--
	}
	if p.invincibleTicks > 0 {
		p.invincibleTicks--
	}
	if p.rechargeTicks > 0 {
		p.rechargeTicks--
	}

	if !p.jump.step(w, self, pc.JumpStep) {
		w.fall(self, pc.FallStep, 0, false)
	}

	p.handleKey(w, self, w.key)
}

// handleKey applies the single key pressed this tick.
func (p *Peach) handleKey(w *World, self *Entity, key Key) {
	pc := w.cfg.Player

	switch key {
	case KeyLeft:
		self.facing = FacingLeft
		w.MoveTo(self, self.x-pc.MoveStep, self.y)
	case KeyRight:
		self.facing = FacingRight
		w.MoveTo(self, self.x+pc.MoveStep, self.y)
	case KeyUp:
		distance := pc.JumpDistance
		if p.jumpPower {
			distance = pc.PowerJumpDistance
		}
		p.jump.start(w, self, distance)
	case KeyFire:
		if !p.shootPower || p.rechargeTicks >= 1 {
			return
		}
		w.env.PlaySound(SoundFire)
		p.rechargeTicks = pc.ShootRechargeTicks
		x := self.x + pc.FireballOffset*self.facing.Sign()
		w.Add(KindPeachFireball, x, self.y, self.facing)
	}
}

// Bonk hands the collision to whatever Peach walked or jumped into.
func (p *Peach) Bonk(w *World, self, other *Entity) bool {
	return w.bonkedBy(other, self)
}

// BonkedBy hurts Peach unless she is star-powered or still invincible.
func (p *Peach) BonkedBy(w *World, self, other *Entity) bool {
	return p.hurt(w, self)
}

// DamagedBy is the same as being bonked.
func (p *Peach) DamagedBy(w *World, self, other *Entity) bool {
	return p.hurt(w, self)
}

func (p *Peach) hurt(w *World, self *Entity) bool {
	if p.starTicks > 0 || p.invincibleTicks > 0 {
		return false
	}

	pc := w.cfg.Player
	p.hitPoints -= pc.DamagePerHit
	p.invincibleTicks = pc.InvincibilityTicks
	p.shootPower = false
	p.jumpPower = false

	if p.hitPoints > 0 {
		w.env.PlaySound(SoundHurt)
		return true
	}
	self.die()
	w.playerDied = true
	return true
}
