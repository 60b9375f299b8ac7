package world

// target is a level goal. The flag ends the level, Mario ends the game.
type target struct {
	inert
}

func (target) Update(w *World, self *Entity) {
	if _, ok := w.touchingPlayer(self); !ok {
		return
	}
	self.die()
	if self.kind == KindMario {
		w.score(w.cfg.Targets.MarioScore)
		w.playerWon = true
		return
	}
	w.score(w.cfg.Targets.FlagScore)
	w.levelCompleted = true
}
