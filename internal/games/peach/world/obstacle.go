package world

// obstacle is a plain block or pipe. It only answers Peach's bonks.
type obstacle struct {
	inert
}

func (obstacle) BonkedBy(w *World, self, other *Entity) bool {
	if !other.IsPlayer() {
		return false
	}
	w.env.PlaySound(SoundBonk)
	return true
}

// goodieBlock releases a power-up each time Peach bonks it, until empty.
type goodieBlock struct {
	inert
	items  int
	goodie Kind
}

// Items returns how many power-ups the block still holds.
func (b *goodieBlock) Items() int { return b.items }

func (b *goodieBlock) BonkedBy(w *World, self, other *Entity) bool {
	if !other.IsPlayer() {
		return false
	}
	if b.items <= 0 {
		w.env.PlaySound(SoundBonk)
		return true
	}
	b.items--
	w.Add(b.goodie, self.x, self.y+w.cfg.Sprite.Height, FacingRight)
	w.env.PlaySound(SoundPowerUpAppears)
	return true
}
