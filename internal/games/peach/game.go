// Package peach is the Super Peach Sisters frame driver. It owns the run:
// lives, the level counter, the score and the status line. Each frame it
// hands one key to the simulation core and reacts to the outcome.
package peach

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Run states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // No lives left
	StateWon      = "won"      // Mario rescued, or the campaign ran out of levels
	StateError    = "error"    // A level could not be loaded
)

// Outcomes recorded in the run history.
const (
	OutcomeWon        = "won"
	OutcomeOutOfLives = "out_of_lives"
	OutcomeLevelError = "level_error"
)

// GameMode selects where levels come from.
type GameMode int

const (
	ModeCampaign GameMode = iota // Level files, built in or from a directory
	ModeEndless                  // Generated levels, no last level
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir makes the campaign read levelNN.txt files from dir instead
// of the built-in set. An empty dir restores the built-in levels.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel overrides the configured first level. Zero keeps the config.
func SetStartLevel(n int) {
	startLevel = n
}

// SetLogger routes driver logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the Super Peach Sisters run.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PeachConfig
	difficulty *config.DifficultyManager
	source     levels.Source

	// Current level
	world  *world.World
	grid   *levels.Grid
	camera camera

	// Run state
	hud        *hud
	state      string
	outcome    string
	lives      int
	level      int
	firstLevel int
	ticks      int
	runID      uuid.UUID
	loadErr    error

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a game on generated levels.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "peach_endless"
	}
	return "peach"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Super Peach Sisters (Endless)"
	}
	return "Super Peach Sisters"
}

// Description returns a one-line summary for the game list.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Generated levels that get busier the further you go"
	}
	return "Reach the flag on every level and rescue Mario"
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPeach(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPeachConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPeachPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.source = g.newSource()

	g.world = nil
	g.grid = nil
	g.minScreenW = 20
	g.minScreenH = 8
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.hud = newHUD(soundSink())
	g.state = StatePlaying
	g.outcome = ""
	g.lives = cfg.Gameplay.Lives
	g.ticks = 0
	g.runID = uuid.New()
	g.loadErr = nil

	g.firstLevel = cfg.Gameplay.StartLevel
	if startLevel > 0 {
		g.firstLevel = startLevel
	}
	if g.firstLevel < levels.MinLevel {
		g.firstLevel = levels.MinLevel
	}

	logger.Info("run started", "game", g.ID(), "run", g.runID, "lives", g.lives, "level", g.firstLevel)
	g.loadLevel(g.firstLevel)
}

// newSource picks the level source for the mode.
func (g *Game) newSource() levels.Source {
	gp := g.cfg.Gameplay
	if g.mode == ModeEndless {
		return levels.NewGenerator(g.runtime.Seed, gp.GridHeight, g.cfg.Generator, g.difficulty)
	}
	if levelsDir != "" {
		return levels.NewDirSource(levelsDir, gp.GridWidth, gp.GridHeight)
	}
	return levels.Builtin(gp.GridWidth, gp.GridHeight)
}

// loadLevel builds a fresh world for level n. A campaign that runs out of
// level files after its first level is won; any other failure ends the run.
func (g *Game) loadLevel(n int) {
	g.level = n

	grid, err := g.source.Load(n)
	if err != nil {
		if errors.Is(err, levels.ErrLevelNotFound) && n > g.firstLevel {
			logger.Info("campaign complete", "run", g.runID, "last_level", n-1)
			g.level = n - 1
			g.finish(StateWon, OutcomeWon)
			return
		}
		g.failLevel(err)
		return
	}

	rng := rand.New(rand.NewSource(g.runtime.Seed + int64(n))) //#nosec G404 -- gameplay randomness, not security
	w := world.New(g.levelConfig(n), g.hud, rng)
	if err := w.Populate(grid); err != nil {
		g.failLevel(fmt.Errorf("level %d: %w", n, err))
		return
	}

	g.world = w
	g.grid = grid
	g.hud.status = w.Status()
	g.followPeach()
	logger.Info("level started", "run", g.runID, "level", n, "entities", w.Len())
}

// levelConfig applies difficulty scaling that depends on the level number.
// Campaign levels keep the configured tuning.
func (g *Game) levelConfig(n int) config.PeachConfig {
	cfg := g.cfg
	if g.mode != ModeEndless {
		return cfg
	}
	cfg.Piranha.FiringDelay = g.difficulty.FiringDelay(cfg.Piranha.FiringDelay, n, g.hud.score)
	return cfg
}

func (g *Game) failLevel(err error) {
	g.loadErr = err
	logger.Error("level load failed", "run", g.runID, "level", g.level, "err", err)
	g.finish(StateError, OutcomeLevelError)
}

func (g *Game) finish(state, outcome string) {
	g.state = state
	g.outcome = outcome
	logger.Info("run finished", "run", g.runID, "outcome", outcome, "score", g.hud.score, "level", g.level, "ticks", g.ticks)
}

// Resize follows a terminal resize without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
	g.camera.resize(width, height-hudRows)
	g.followPeach()
}

// Step advances the run by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.hud.cues = g.hud.cues[:0]
	outcome := g.world.Tick(keyFor(in))

	switch outcome {
	case world.OutcomePlayerDied:
		g.lives--
		logger.Info("peach died", "run", g.runID, "level", g.level, "lives", g.lives)
		if g.lives <= 0 {
			g.hud.PlaySound(world.SoundGameOver)
			g.finish(StateGameOver, OutcomeOutOfLives)
			break
		}
		g.loadLevel(g.level)

	case world.OutcomeLevelFinished:
		logger.Info("level finished", "run", g.runID, "level", g.level, "score", g.hud.score)
		g.loadLevel(g.level + 1)

	case world.OutcomePlayerWon:
		g.finish(StateWon, OutcomeWon)

	default:
		g.followPeach()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) over() bool {
	return g.state == StateGameOver || g.state == StateWon || g.state == StateError
}

// keyFor picks the single key Peach sees this tick.
func keyFor(in core.InputFrame) world.Key {
	switch {
	case in.Has(core.ActionLeft):
		return world.KeyLeft
	case in.Has(core.ActionRight):
		return world.KeyRight
	case in.Has(core.ActionJump):
		return world.KeyUp
	case in.Has(core.ActionFire):
		return world.KeyFire
	default:
		return world.KeyNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.hud == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.hud.score,
		GameOver: g.over(),
		Paused:   g.state == StatePaused,
		Won:      g.state == StateWon,
		Level:    g.level,
		Ticks:    g.ticks,
		Outcome:  g.outcome,
	}
}

// RunID identifies the current run in the run history.
func (g *Game) RunID() uuid.UUID { return g.runID }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// LoadError returns why the run ended in StateError.
func (g *Game) LoadError() error { return g.loadErr }

// World exposes the current level's simulation.
func (g *Game) World() *world.World { return g.world }

// StatusLine returns the text shown above the playfield.
func (g *Game) StatusLine() string {
	return statusLine(g.lives, g.level, g.hud.score, g.hud.status)
}

// Register the games with the registry
func init() {
	registry.Register("peach", func() registry.Game {
		return New()
	})
	registry.Register("peach_endless", func() registry.Game {
		return NewEndless()
	})
}
