package world

import "math"

// fall drops e by step when the strip under it is free. A non-zero move
// carries e sideways in its facing direction at the same time; if that
// diagonal target is blocked, mustMove aborts the fall and otherwise the
// sideways part is dropped.
func (w *World) fall(e *Entity, step, move float64, mustMove bool) bool {
	if !w.SpaceBelow(e, e.x, e.y, w.cfg.Sprite.Width, step) {
		return false
	}
	dx := 0.0
	if move != 0 {
		dx = math.Abs(move) * e.facing.Sign()
		if w.AnyBlockingAt(e, e.x+dx, e.y-step) {
			if mustMove {
				return false
			}
			dx = 0
		}
	}
	return w.MoveTo(e, e.x+dx, e.y-step)
}

// advance is the shared goodie and projectile stride: fall, then step
// sideways. It returns false without moving when the sideways target is solid.
func (w *World) advance(e *Entity, fallStep, moveStep float64) bool {
	w.fall(e, fallStep, 0, false)
	tx := e.x + moveStep*e.facing.Sign()
	if w.AnyBlockingAt(e, tx, e.y) {
		return false
	}
	w.MoveTo(e, tx, e.y)
	return true
}

// patrol walks an enemy one step along its facing. A wall reverses it and
// the refused move still bonks the wall. A ledge ahead reverses it, but the
// planned step is still taken.
func (w *World) patrol(e *Entity, step float64) bool {
	tx := e.x + step*e.facing.Sign()
	if w.AnyBlockingAt(e, tx, e.y) {
		e.reverse()
		return w.MoveTo(e, tx, e.y)
	}
	lead := tx
	if e.facing == FacingRight {
		lead = tx + w.cfg.Sprite.Width
	}
	if w.SpaceBelow(e, lead, e.y, 1, 1) {
		e.reverse()
	}
	return w.MoveTo(e, tx, e.y)
}

// jump tracks the remaining upward movement, in ticks.
type jump struct {
	remaining int
}

// start begins a jump of distance ticks when e stands on something solid.
func (j *jump) start(w *World, e *Entity, distance int) bool {
	if !w.AnyBlockingAt(e, e.x, e.y-1) {
		return false
	}
	j.remaining = distance
	w.env.PlaySound(SoundJump)
	return true
}

// step rises by stepSize. Hitting something overhead ends the jump.
func (j *jump) step(w *World, e *Entity, stepSize float64) bool {
	if j.remaining <= 0 {
		return false
	}
	if !w.MoveTo(e, e.x, e.y+stepSize) {
		j.remaining = 0
		w.env.PlaySound(SoundBonk)
		return false
	}
	j.remaining--
	return true
}
