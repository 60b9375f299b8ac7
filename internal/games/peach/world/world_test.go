package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/levels"
)

// recorder is an Env that remembers everything the world reports.
type recorder struct {
	sounds   []Sound
	score    int
	statuses []Status
}

func (r *recorder) PlaySound(s Sound)        { r.sounds = append(r.sounds, s) }
func (r *recorder) IncreaseScore(points int) { r.score += points }
func (r *recorder) UpdateStatus(st Status)   { r.statuses = append(r.statuses, st) }

func (r *recorder) count(s Sound) int {
	n := 0
	for _, got := range r.sounds {
		if got == s {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T) (*World, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(config.DefaultPeachConfig(), rec, rand.New(rand.NewSource(1))), rec
}

// floor lays blocks along row gy from column x0 to x1 inclusive.
func floor(w *World, x0, x1, gy int) {
	for gx := x0; gx <= x1; gx++ {
		w.Add(KindBlock, float64(gx*8), float64(gy*8), FacingRight)
	}
}

func ofKind(w *World, kind Kind) []*Entity {
	var out []*Entity
	for _, e := range w.Entities() {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestOverlapsSymmetricHalfOpen(t *testing.T) {
	w, _ := newTestWorld(t)
	a := w.Add(KindGoomba, 0, 0, FacingRight)
	touching := w.Add(KindGoomba, 8, 0, FacingRight)
	above := w.Add(KindGoomba, 0, 8, FacingRight)
	inside := w.Add(KindGoomba, 7.5, 7.5, FacingRight)

	tests := []struct {
		name string
		b    *Entity
		want bool
	}{
		{"shared vertical edge", touching, false},
		{"shared horizontal edge", above, false},
		{"corner overlap", inside, true},
		{"self", a, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(a, tt.b))
			assert.Equal(t, w.Overlaps(a, tt.b), w.Overlaps(tt.b, a), "overlap must be symmetric")
		})
	}
}

func TestAnyBlockingAt(t *testing.T) {
	w, _ := newTestWorld(t)
	block := w.Add(KindBlock, 16, 0, FacingRight)
	goomba := w.Add(KindGoomba, 32, 0, FacingRight)

	assert.True(t, w.AnyBlockingAt(goomba, 12, 0))
	assert.False(t, w.AnyBlockingAt(goomba, 8, 0), "touching edges do not block")
	assert.False(t, w.AnyBlockingAt(block, 16, 0), "self is excluded")

	peach := w.Add(KindPeach, 0, 0, FacingRight)
	assert.False(t, w.AnyBlockingAt(peach, 32, 0), "non-blocking entities never block")

	block.die()
	assert.False(t, w.AnyBlockingAt(goomba, 12, 0), "dead entities never block")
}

func TestSpaceBelowAndGrounded(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 3, 0)
	peach := w.Add(KindPeach, 8, 8, FacingRight)

	assert.True(t, w.Grounded(peach))
	assert.False(t, w.SpaceBelow(peach, 8, 8, 8, 4))

	peach.x, peach.y = 8, 12
	assert.False(t, w.Grounded(peach))
	assert.True(t, w.SpaceBelow(peach, 8, 12, 8, 4), "probe strip starts at the block's top edge")

	// Past the right end of the floor
	assert.True(t, w.SpaceBelow(peach, 32, 8, 8, 1))
	assert.False(t, w.SpaceBelow(peach, 31, 8, 1, 1))
}

func TestMoveToRefusesAndBonks(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	wall := w.Add(KindBlock, 32, 8, FacingRight)
	peach := w.Add(KindPeach, 24, 8, FacingRight)

	assert.False(t, w.MoveTo(peach, 28, 8))
	assert.Equal(t, 24.0, peach.X(), "refused move leaves the entity in place")
	assert.Equal(t, 1, rec.count(SoundBonk), "the wall hears Peach's bonk")

	assert.True(t, w.MoveTo(peach, 20, 8))
	assert.Equal(t, 20.0, peach.X())

	wall.die()
	assert.True(t, w.MoveTo(peach, 28, 8), "dead blocks do not refuse")
	assert.Equal(t, 1, rec.count(SoundBonk), "dead blocks are not bonked")
}

func TestMoveToZeroDisplacementStillBonks(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)
	goomba := w.Add(KindGoomba, 16, 8, FacingRight)
	w.Peach().GiveStarPower(100)

	assert.True(t, w.MoveTo(peach, peach.X(), peach.Y()))
	assert.False(t, goomba.Alive(), "overlap at rest is re-bonked")
	assert.Equal(t, 1, rec.count(SoundKick))
	assert.Equal(t, 100, rec.score)
}

func TestDeadEntitiesIgnored(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	goomba := w.Add(KindGoomba, 16, 8, FacingRight)
	fireball := w.Add(KindPeachFireball, 16, 8, FacingRight)
	goomba.die()

	assert.False(t, w.DamageOverlapping(fireball))
	assert.False(t, w.damagedBy(goomba, fireball))
	assert.False(t, w.bonk(goomba, fireball))
	assert.Zero(t, rec.score)
}

func TestGoombaKillsUnpoweredPeach(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)
	goomba := w.Add(KindGoomba, 16, 8, FacingRight)

	out := w.Tick(KeyNone)

	assert.Equal(t, OutcomePlayerDied, out)
	assert.False(t, peach.Alive())
	assert.Equal(t, 0, w.Peach().HitPoints())
	assert.Equal(t, SoundDie, rec.sounds[len(rec.sounds)-1])
	assert.Empty(t, rec.statuses, "no status update on a terminal tick")

	// Death is raised exactly once
	assert.False(t, w.bonkedBy(peach, goomba))
	assert.Equal(t, 0, w.Peach().HitPoints())
}

func TestPeachHurtThenInvincible(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	w.Add(KindGoomba, 16, 8, FacingRight)

	p := w.Peach()
	p.SetHitPoints(2)
	p.GiveShootPower()
	p.GiveJumpPower()

	require.Equal(t, OutcomeContinue, w.Tick(KeyNone))
	assert.Equal(t, 1, p.HitPoints())
	assert.True(t, p.Invincible())
	assert.False(t, p.HasShootPower(), "a hit strips shoot power")
	assert.False(t, p.HasJumpPower(), "a hit strips jump power")
	assert.Equal(t, 1, rec.count(SoundHurt))

	// The goomba keeps touching her but the immunity window holds
	for i := 0; i < 9; i++ {
		require.Equal(t, OutcomeContinue, w.Tick(KeyNone), "tick %d", i)
	}
	assert.Equal(t, 1, p.HitPoints())

	assert.Equal(t, OutcomePlayerDied, w.Tick(KeyNone))
	assert.Equal(t, 0, p.HitPoints())
}

func TestJumpIntoFlowerBlock(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)
	blockEnt := w.Add(KindFlowerBlock, 16, 24, FacingRight)
	block := blockEnt.Behavior().(*goodieBlock)

	w.Tick(KeyUp)
	assert.True(t, w.Peach().Jumping())
	assert.Equal(t, 1, rec.count(SoundJump))

	w.Tick(KeyNone) // y 8 -> 12
	w.Tick(KeyNone) // y 12 -> 16, touching the block's underside
	assert.Equal(t, 16.0, peach.Y())
	assert.Empty(t, ofKind(w, KindFlower))

	w.Tick(KeyNone) // refused: bonk, then fall back
	assert.False(t, w.Peach().Jumping())
	assert.Equal(t, 0, block.Items())
	assert.Equal(t, 1, rec.count(SoundPowerUpAppears))
	assert.Equal(t, 1, rec.count(SoundBonk), "the refused jump plays the bonk cue")

	flowers := ofKind(w, KindFlower)
	require.Len(t, flowers, 1)
	assert.Equal(t, 32.0, flowers[0].Y(), "goodie appears on top of the block")

	// An empty block only bonks
	peach.x, peach.y = 16, 16
	assert.False(t, w.MoveTo(peach, 16, 20))
	assert.Len(t, ofKind(w, KindFlower), 1)
	assert.Equal(t, 0, block.Items())
	assert.Equal(t, 2, rec.count(SoundBonk))
}

func TestGoodieBlockReleasesExactlyItems(t *testing.T) {
	cfg := config.DefaultPeachConfig()
	cfg.Goodies.ItemsPerBlock = 3
	w := New(cfg, nil, nil)
	peach := w.Add(KindPeach, 0, 0, FacingRight)
	blockEnt := w.Add(KindMushroomBlock, 0, 8, FacingRight)
	block := blockEnt.Behavior().(*goodieBlock)

	for k := 1; k <= 4; k++ {
		w.MoveTo(peach, 0, 4)
		want := k
		if want > 3 {
			want = 3
		}
		assert.Len(t, ofKind(w, KindMushroom), want, "after %d bonks", k)
		assert.Equal(t, 3-want, block.Items(), "after %d bonks", k)
	}
}

func TestOnlyPeachBonksBlocks(t *testing.T) {
	w, rec := newTestWorld(t)
	blockEnt := w.Add(KindStarBlock, 0, 8, FacingRight)
	goomba := w.Add(KindGoomba, 0, 0, FacingRight)

	assert.False(t, w.MoveTo(goomba, 0, 4))
	assert.Equal(t, 1, blockEnt.Behavior().(*goodieBlock).Items())
	assert.Empty(t, rec.sounds)
}

func TestStarPeachKicksKoopa(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	koopa := w.Add(KindKoopa, 16, 8, FacingLeft)
	w.Peach().GiveStarPower(1000)

	require.Equal(t, OutcomeContinue, w.Tick(KeyNone))

	_, ok := w.Entity(koopa.ID())
	assert.False(t, ok, "dead koopa is pruned")
	assert.Equal(t, 100, rec.score)
	assert.Equal(t, 1, rec.count(SoundKick))

	shells := ofKind(w, KindShell)
	require.Len(t, shells, 1)
	assert.Equal(t, FacingLeft, shells[0].Facing())
	assert.Equal(t, 8.0, shells[0].Y())
	assert.Equal(t, 14.0, shells[0].X(), "the shell takes its first stride in the spawning tick")
	assert.Greater(t, shells[0].ID(), koopa.ID(), "IDs are never reused")
}

func TestStarPeachWalksIntoGoomba(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)
	goomba := w.Add(KindGoomba, 24, 8, FacingRight)
	w.Peach().GiveStarPower(1000)

	require.Equal(t, OutcomeContinue, w.Tick(KeyRight))
	assert.False(t, goomba.Alive())
	assert.Equal(t, 20.0, peach.X(), "enemies never block")
	assert.Equal(t, 100, rec.score)
	assert.Empty(t, ofKind(w, KindShell), "goombas leave nothing behind")
}

func TestPeachFireballKillsPiranha(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 0, 8, FacingRight)
	pir := w.Add(KindPiranha, 48, 8, FacingLeft)
	pir.Behavior().(*piranha).firingDelay = 100
	fireball := w.Add(KindPeachFireball, 44, 8, FacingRight)

	require.Equal(t, OutcomeContinue, w.Tick(KeyNone))

	assert.False(t, pir.Alive())
	assert.False(t, fireball.Alive(), "the fireball burns out on the hit")
	assert.Equal(t, 44.0, fireball.X(), "a fireball that hit does not move")
	assert.Equal(t, 100, rec.score)
	assert.Empty(t, ofKind(w, KindPeachFireball))
}

func TestFireballsSparePeach(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	shell := w.Add(KindShell, 16, 8, FacingRight)

	require.Equal(t, OutcomeContinue, w.Tick(KeyNone))
	assert.True(t, shell.Alive())
	assert.Equal(t, 1, w.Peach().HitPoints())
}

func TestPiranhaFireballHurtsPeach(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	w.Peach().SetHitPoints(2)
	fb := w.Add(KindPiranhaFireball, 20, 8, FacingLeft)

	require.Equal(t, OutcomeContinue, w.Tick(KeyNone))
	assert.Equal(t, 1, w.Peach().HitPoints())
	assert.False(t, fb.Alive())
}

func TestFlagEndsLevelImmediately(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	flag := w.Add(KindFlag, 16, 8, FacingRight)
	goomba := w.Add(KindGoomba, 48, 8, FacingRight)

	out := w.Tick(KeyNone)

	assert.Equal(t, OutcomeLevelFinished, out)
	assert.False(t, flag.Alive())
	assert.Equal(t, 1000, rec.score)
	assert.Equal(t, 48.0, goomba.X(), "entities after the flag do not update")
	assert.Equal(t, SoundFinishedLevel, rec.sounds[len(rec.sounds)-1])
	_, ok := w.Entity(flag.ID())
	assert.True(t, ok, "a terminal tick does not prune")
}

func TestMarioWinsGame(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	w.Add(KindMario, 20, 8, FacingRight)

	assert.Equal(t, OutcomePlayerWon, w.Tick(KeyNone))
	assert.Equal(t, 1000, rec.score)
	assert.Equal(t, SoundGameOver, rec.sounds[len(rec.sounds)-1])
}

func TestGoodiePickup(t *testing.T) {
	tests := []struct {
		kind      Kind
		score     int
		star      bool
		shoot     bool
		jump      bool
		hitPoints int
	}{
		{KindStar, 100, true, false, false, 1},
		{KindFlower, 50, false, true, false, 2},
		{KindMushroom, 75, false, false, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w, rec := newTestWorld(t)
			floor(w, 0, 5, 0)
			w.Add(KindPeach, 16, 8, FacingRight)
			g := w.Add(tt.kind, 16, 8, FacingRight)

			require.Equal(t, OutcomeContinue, w.Tick(KeyNone))

			p := w.Peach()
			assert.False(t, g.Alive())
			assert.Equal(t, tt.score, rec.score)
			assert.Equal(t, tt.star, p.HasStarPower())
			assert.Equal(t, tt.shoot, p.HasShootPower())
			assert.Equal(t, tt.jump, p.HasJumpPower())
			assert.Equal(t, tt.hitPoints, p.HitPoints())
			assert.Equal(t, 1, rec.count(SoundPowerUp))
			assert.Equal(t, Status{StarPower: tt.star, ShootPower: tt.shoot, JumpPower: tt.jump}, rec.statuses[len(rec.statuses)-1])
			if tt.star {
				assert.Equal(t, 150, p.StarTicks())
			}
		})
	}
}

func TestGoodieTurnsAtWall(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindBlock, 32, 8, FacingRight)
	star := w.Add(KindStar, 22, 8, FacingRight)

	w.Tick(KeyNone)
	assert.Equal(t, 24.0, star.X())

	w.Tick(KeyNone)
	assert.Equal(t, 24.0, star.X(), "blocked goodie does not move")
	assert.Equal(t, FacingLeft, star.Facing())

	w.Tick(KeyNone)
	assert.Equal(t, 22.0, star.X())
}

func TestProjectileDiesAtWall(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindBlock, 32, 8, FacingRight)
	fb := w.Add(KindPeachFireball, 22, 8, FacingRight)

	w.Tick(KeyNone)
	assert.True(t, fb.Alive())
	w.Tick(KeyNone)
	assert.False(t, fb.Alive())
	_, ok := w.Entity(fb.ID())
	assert.False(t, ok)
}

func TestGoodieFallsOffLedge(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 1, 0)
	mush := w.Add(KindMushroom, 8, 8, FacingRight)

	for i := 0; i < 4; i++ {
		w.Tick(KeyNone)
	}
	assert.Equal(t, 16.0, mush.X())
	assert.Equal(t, 8.0, mush.Y(), "still supported by the last block's edge")

	w.Tick(KeyNone)
	assert.Equal(t, 6.0, mush.Y(), "goodies drop off ledges")
}

func TestEnemyPatrolTurnsAtLedge(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 3, 0)
	goomba := w.Add(KindGoomba, 16, 8, FacingRight)

	for i := 0; i < 7; i++ {
		w.Tick(KeyNone)
	}
	assert.Equal(t, 23.0, goomba.X())
	assert.Equal(t, FacingRight, goomba.Facing())

	// The next step leaves the leading edge over nothing: the goomba turns
	// but still takes that step
	w.Tick(KeyNone)
	assert.Equal(t, 24.0, goomba.X())
	assert.Equal(t, 8.0, goomba.Y())
	assert.Equal(t, FacingLeft, goomba.Facing())

	w.Tick(KeyNone)
	assert.Equal(t, 23.0, goomba.X())
	w.Tick(KeyNone)
	assert.Equal(t, 22.0, goomba.X())
}

func TestFallWithSidewaysMove(t *testing.T) {
	tests := []struct {
		name     string
		block    bool
		mustMove bool
		wantOK   bool
		wantX    float64
		wantY    float64
	}{
		{"diagonal free", false, true, true, 8, 4},
		{"diagonal blocked must move", true, true, false, 0, 8},
		{"diagonal blocked drops straight", true, false, true, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			if tt.block {
				w.Add(KindBlock, 12, 0, FacingRight)
			}
			goomba := w.Add(KindGoomba, 0, 8, FacingRight)

			assert.Equal(t, tt.wantOK, w.fall(goomba, 4, 8, tt.mustMove))
			assert.Equal(t, tt.wantX, goomba.X())
			assert.Equal(t, tt.wantY, goomba.Y())
		})
	}
}

func TestFallSidewaysFollowsFacing(t *testing.T) {
	w, _ := newTestWorld(t)
	goomba := w.Add(KindGoomba, 16, 8, FacingLeft)

	require.True(t, w.fall(goomba, 4, 8, true))
	assert.Equal(t, 8.0, goomba.X())
	assert.Equal(t, 4.0, goomba.Y())
}

func TestEnemyPatrolTurnsAtWall(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindBlock, 40, 8, FacingRight)
	goomba := w.Add(KindGoomba, 32, 8, FacingRight)

	w.Tick(KeyNone)
	assert.Equal(t, 32.0, goomba.X())
	assert.Equal(t, FacingLeft, goomba.Facing())
}

func TestPiranhaFiringCadence(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	w.Peach().GiveStarPower(10000)
	pirEnt := w.Add(KindPiranha, 48, 8, FacingRight)
	pir := pirEnt.Behavior().(*piranha)

	w.Tick(KeyNone)
	assert.Equal(t, FacingLeft, pirEnt.Facing(), "turns toward Peach")
	assert.Equal(t, 1, rec.count(SoundPiranhaFire))
	assert.Equal(t, 40, pir.FiringDelay())
	require.Len(t, ofKind(w, KindPiranhaFireball), 1)
	assert.Equal(t, FacingLeft, ofKind(w, KindPiranhaFireball)[0].Facing())

	for i := 0; i < 40; i++ {
		w.Tick(KeyNone)
	}
	assert.Equal(t, 1, rec.count(SoundPiranhaFire))
	assert.Equal(t, 0, pir.FiringDelay())

	w.Tick(KeyNone)
	assert.Equal(t, 2, rec.count(SoundPiranhaFire))
	assert.True(t, pirEnt.Alive())
}

func TestPiranhaIgnoresPeachOutsideBand(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindBlock, 16, 8, FacingRight)
	w.Add(KindBlock, 16, 16, FacingRight)
	w.Add(KindPeach, 16, 24, FacingRight) // 16 units above the band edge
	pirEnt := w.Add(KindPiranha, 48, 8, FacingRight)

	w.Tick(KeyNone)
	assert.Equal(t, FacingRight, pirEnt.Facing())
	assert.Zero(t, rec.count(SoundPiranhaFire))
}

func TestPiranhaHoldsFireOutOfRange(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 15, 0)
	w.Add(KindPeach, 16, 8, FacingRight)
	pirEnt := w.Add(KindPiranha, 80, 8, FacingRight) // 64 units away: just out of range

	w.Tick(KeyNone)
	assert.Equal(t, FacingLeft, pirEnt.Facing())
	assert.Zero(t, rec.count(SoundPiranhaFire))
	assert.Equal(t, 0, pirEnt.Behavior().(*piranha).FiringDelay())
}

func TestPeachFalls(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 40, FacingRight)

	for i := 0; i < 10; i++ {
		w.Tick(KeyNone)
	}
	assert.Equal(t, 8.0, peach.Y())
	assert.True(t, w.Grounded(peach))
}

func TestPeachJumpNeedsGround(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindPeach, 16, 40, FacingRight)

	w.Tick(KeyUp)
	assert.False(t, w.Peach().Jumping(), "no jump in mid-air")
	assert.Zero(t, rec.count(SoundJump))
}

func TestPeachJumpPower(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)
	w.Peach().GiveJumpPower()

	w.Tick(KeyUp)
	assert.Equal(t, 12, w.Peach().remaining)

	for i := 0; i < 12; i++ {
		w.Tick(KeyNone)
	}
	assert.Equal(t, 8.0+12*4, peach.Y())
	assert.False(t, w.Peach().Jumping())
}

func TestPeachWalkAndFacing(t *testing.T) {
	w, _ := newTestWorld(t)
	floor(w, 0, 5, 0)
	peach := w.Add(KindPeach, 16, 8, FacingRight)

	w.Tick(KeyLeft)
	assert.Equal(t, 12.0, peach.X())
	assert.Equal(t, FacingLeft, peach.Facing())

	w.Tick(KeyRight)
	assert.Equal(t, 16.0, peach.X())
	assert.Equal(t, FacingRight, peach.Facing())
}

func TestPeachShootingRecharge(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 9, 0)
	w.Add(KindPeach, 16, 8, FacingRight)

	w.Tick(KeyFire)
	assert.Empty(t, ofKind(w, KindPeachFireball), "no fireball without shoot power")

	w.Peach().GiveShootPower()
	w.Tick(KeyFire)
	fireballs := ofKind(w, KindPeachFireball)
	require.Len(t, fireballs, 1)
	assert.Equal(t, 22.0, fireballs[0].X(), "spawned 4 ahead and already took one stride")
	assert.Equal(t, 1, rec.count(SoundFire))

	for i := 0; i < 7; i++ {
		w.Tick(KeyFire)
	}
	assert.Equal(t, 1, rec.count(SoundFire), "still recharging")

	w.Tick(KeyFire)
	assert.Equal(t, 2, rec.count(SoundFire))
}

func TestStatusPublishedEveryTick(t *testing.T) {
	w, rec := newTestWorld(t)
	floor(w, 0, 5, 0)
	w.Add(KindPeach, 16, 8, FacingRight)

	for i := 0; i < 5; i++ {
		w.Tick(KeyNone)
	}
	assert.Len(t, rec.statuses, 5)
	assert.Equal(t, uint64(5), w.Ticks())
}

func TestIDsNeverReused(t *testing.T) {
	w, _ := newTestWorld(t)
	first := w.Add(KindGoomba, 0, 0, FacingRight)
	first.die()
	w.Tick(KeyNone)

	_, ok := w.Entity(first.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())

	second := w.Add(KindGoomba, 0, 0, FacingRight)
	assert.Greater(t, second.ID(), first.ID())
}

func TestPopulate(t *testing.T) {
	g, err := levels.Parse([]byte("..f..\n.@g..\n#####\n"), 5, 3)
	require.NoError(t, err)

	w, _ := newTestWorld(t)
	require.NoError(t, w.Populate(g))

	assert.Equal(t, 8, w.Len())
	peach := w.Player()
	require.NotNil(t, peach)
	assert.Equal(t, 8.0, peach.X())
	assert.Equal(t, 8.0, peach.Y())

	flags := ofKind(w, KindFlag)
	require.Len(t, flags, 1)
	assert.Equal(t, 16.0, flags[0].X())
	assert.Equal(t, 16.0, flags[0].Y())

	for _, b := range ofKind(w, KindBlock) {
		assert.True(t, b.Blocking())
		assert.Equal(t, 2, b.Depth())
	}
}

func TestPopulateWithoutPeach(t *testing.T) {
	g := levels.NewGrid(4, 2)
	g.Set(0, 0, levels.Block)

	w, _ := newTestWorld(t)
	assert.ErrorIs(t, w.Populate(g), ErrNoPlayer)
}

func TestPopulateRejectsSecondPeach(t *testing.T) {
	g := levels.NewGrid(4, 2)
	g.Set(0, 0, levels.Block)
	g.Set(1, 0, levels.Block)
	g.Set(0, 1, levels.Peach)
	g.Set(1, 1, levels.Peach)

	w, _ := newTestWorld(t)
	assert.ErrorIs(t, w.Populate(g), ErrManyPlayers)
	require.NotNil(t, w.Player())
	assert.Equal(t, 0.0, w.Player().X(), "the first Peach stays the player")
	assert.Len(t, ofKind(w, KindPeach), 1)
}

func TestKindTraits(t *testing.T) {
	w, _ := newTestWorld(t)
	for k := Kind(0); k < kindCount; k++ {
		e := w.Add(k, 0, float64(k)*100, FacingRight)
		assert.Equal(t, k == KindPeach, e.IsPlayer(), k.String())
		assert.Equal(t, k == KindPeach || k.IsEnemy(), e.Damagable(), k.String())
		assert.NotEqual(t, "unknown", k.String())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (Snapshot, int) {
		grid, err := levels.Builtin(32, 32).Load(1)
		require.NoError(t, err)

		rec := &recorder{}
		w := New(config.DefaultPeachConfig(), rec, rand.New(rand.NewSource(12345)))
		require.NoError(t, w.Populate(grid))

		keys := []Key{KeyRight, KeyRight, KeyUp, KeyNone, KeyRight, KeyFire, KeyLeft, KeyNone}
		for i := 0; i < 400; i++ {
			if w.Tick(keys[i%len(keys)]) != OutcomeContinue {
				break
			}
		}
		return w.Snapshot(), rec.score
	}

	snap1, score1 := run()
	snap2, score2 := run()

	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, score1, score2)
	assert.Equal(t, snap1.Tick, snap2.Tick)
}
