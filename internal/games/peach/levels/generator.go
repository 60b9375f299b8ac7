package levels

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Noise parameters shared by every generated level.
const (
	noiseAlpha   = 2.0 // Smoothing
	noiseBeta    = 2.0 // Frequency
	noiseOctaves = int32(3)

	gapScale      = 0.21 // Horizontal noise frequency for ground gaps
	platformScale = 0.13 // Horizontal noise frequency for floating runs
	safeColumns   = 4    // Solid ground kept at both ends
	maxGap        = 3    // Widest gap Peach can clear with a normal jump
	platformRun   = 3    // Blocks per floating run
	segmentWidth  = 6    // Columns between platform candidates
)

// Generator builds endless-mode levels from Perlin noise. The same seed
// and level number always give the same grid.
type Generator struct {
	Seed       int64
	Height     int
	Cfg        config.GeneratorConfig
	Difficulty *config.DifficultyManager
}

// NewGenerator creates a generator for levels of the given height.
func NewGenerator(seed int64, height int, cfg config.GeneratorConfig, difficulty *config.DifficultyManager) *Generator {
	return &Generator{
		Seed:       seed,
		Height:     height,
		Cfg:        cfg,
		Difficulty: difficulty,
	}
}

// levelSeed spreads level numbers apart so neighbouring levels differ.
func (g *Generator) levelSeed(n int) int64 {
	return g.Seed*1_000_003 + int64(n)*7919
}

// Load generates level n. Endless mode has no last level, so only
// non-positive numbers are not found.
func (g *Generator) Load(n int) (*Grid, error) {
	if n < MinLevel {
		return nil, ErrLevelNotFound
	}

	width := g.Cfg.Width
	if width < safeColumns*2+segmentWidth {
		width = safeColumns*2 + segmentWidth
	}
	ground := g.Cfg.GroundRows
	if ground < 1 {
		ground = 1
	}

	seed := g.levelSeed(n)
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- level layout, not security

	grid := NewGrid(width, g.Height)
	solid := g.layGround(grid, noise, width, ground)
	g.layPlatforms(grid, noise, rng, width, ground)
	g.placeEnemies(grid, rng, solid, width, ground, n)

	grid.Set(1, ground, Peach)
	grid.Set(width-2, ground, Flag)

	return grid, grid.Validate()
}

// layGround fills the ground band and opens gaps where the noise is high.
// It returns which columns have ground.
func (g *Generator) layGround(grid *Grid, noise *perlin.Perlin, width, ground int) []bool {
	solid := make([]bool, width)
	gapRun := 0
	for gx := 0; gx < width; gx++ {
		inSafeZone := gx < safeColumns || gx >= width-safeColumns
		v := (noise.Noise1D(float64(gx)*gapScale) + 1) / 2
		if !inSafeZone && v > g.Cfg.GapThreshold && gapRun < maxGap {
			gapRun++
			continue
		}
		gapRun = 0
		solid[gx] = true
		for gy := 0; gy < ground; gy++ {
			grid.Set(gx, gy, Block)
		}
	}
	return solid
}

// layPlatforms places short floating runs, some holding goodie blocks.
func (g *Generator) layPlatforms(grid *Grid, noise *perlin.Perlin, rng *rand.Rand, width, ground int) {
	for start := safeColumns + 2; start+platformRun < width-safeColumns; start += segmentWidth {
		v := (noise.Noise2D(float64(start)*platformScale, 0.5) + 1) / 2
		if v <= g.Cfg.PlatformChance {
			continue
		}
		gy := ground + 3 + int(v*3)
		if gy >= g.Height-1 {
			continue
		}
		for gx := start; gx < start+platformRun; gx++ {
			code := Block
			if rng.Float64() < g.Cfg.GoodieChance {
				code = goodieBlocks[rng.Intn(len(goodieBlocks))]
			}
			grid.Set(gx, gy, code)
		}
	}
}

var goodieBlocks = []Code{StarBlock, FlowerBlock, MushroomBlock}

// placeEnemies walks the ground and drops enemies on solid columns. A
// density above the base comes from the difficulty manager.
func (g *Generator) placeEnemies(grid *Grid, rng *rand.Rand, solid []bool, width, ground, n int) {
	density := g.Cfg.EnemyDensity
	if g.Difficulty != nil {
		density = g.Difficulty.EnemyDensity(density, n, 0)
	}

	for gx := safeColumns * 2; gx < width-safeColumns; gx++ {
		if !solid[gx] || grid.At(gx, ground) != Empty {
			continue
		}
		roll := rng.Float64()
		switch {
		case roll < density/4 && grid.At(gx, ground+1) == Empty:
			grid.Set(gx, ground, Pipe)
			grid.Set(gx, ground+1, Piranha)
		case roll < density/2:
			grid.Set(gx, ground, Koopa)
		case roll < density:
			grid.Set(gx, ground, Goomba)
		}
	}
}
