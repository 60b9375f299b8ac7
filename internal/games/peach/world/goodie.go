package world

// goodie is a wandering power-up: star, flower or mushroom.
type goodie struct {
	inert
}

// Update hands the boost to Peach on contact; otherwise the goodie falls
// and slides, turning around at walls. Goodies do not avoid ledges.
func (goodie) Update(w *World, self *Entity) {
	if _, ok := w.touchingPlayer(self); ok {
		w.grant(self.kind)
		self.die()
		w.env.PlaySound(SoundPowerUp)
		return
	}
	gc := w.cfg.Goodies
	if !w.advance(self, gc.FallStep, gc.MoveStep) {
		self.reverse()
	}
}

// grant applies the boost of a goodie kind to Peach.
func (w *World) grant(kind Kind) {
	p := w.Peach()
	if p == nil {
		return
	}
	gc := w.cfg.Goodies
	switch kind {
	case KindStar:
		w.score(gc.StarScore)
		p.GiveStarPower(gc.StarTicks)
	case KindFlower:
		w.score(gc.FlowerScore)
		p.GiveShootPower()
		p.SetHitPoints(gc.PowerHitPoints)
	case KindMushroom:
		w.score(gc.MushroomScore)
		p.GiveJumpPower()
		p.SetHitPoints(gc.PowerHitPoints)
	}
}
