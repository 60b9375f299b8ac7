package config

import "math"

// DifficultyManager calculates dynamic game parameters based on level/score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// level number and score.
func (d *DifficultyManager) Level(levelNum int, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		// Level 1 starts at the initial difficulty.
		progress = float64(levelNum-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyDensity scales a base enemy density by the current difficulty.
func (d *DifficultyManager) EnemyDensity(base float64, levelNum int, score int) float64 {
	level := d.Level(levelNum, score)
	return base * (1.0 + level*d.cfg.Scaling.EnemyMultiplier)
}

// FiringDelay returns the Piranha firing delay for the current difficulty.
func (d *DifficultyManager) FiringDelay(base int, levelNum int, score int) int {
	level := d.Level(levelNum, score)
	reduction := int(level * float64(d.cfg.Scaling.FiringDelayReduction))
	result := base - reduction
	if result < 10 { // Minimum dodgeable delay
		result = 10
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
