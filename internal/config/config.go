// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PeachConfig contains all tunable numbers for Super Peach Sisters.
// Distances are in world units (one sprite is Sprite.Width units wide),
// durations are in ticks.
type PeachConfig struct {
	Sprite     SpriteConfig     `yaml:"sprite"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Piranha    PiranhaConfig    `yaml:"piranha"`
	Goodies    GoodiesConfig    `yaml:"goodies"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Targets    TargetsConfig    `yaml:"targets"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Generator  GeneratorConfig  `yaml:"generator"`
}

// SpriteConfig defines the fixed footprint shared by every entity.
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines Peach's movement and timers.
type PlayerConfig struct {
	MoveStep           float64 `yaml:"move_step"`
	FallStep           float64 `yaml:"fall_step"`
	JumpStep           float64 `yaml:"jump_step"`
	JumpDistance       int     `yaml:"jump_distance"`       // Ticks of upward movement
	PowerJumpDistance  int     `yaml:"power_jump_distance"` // Ticks of upward movement with jump power
	InvincibilityTicks int     `yaml:"invincibility_ticks"` // Immunity window after taking a hit
	ShootRechargeTicks int     `yaml:"shoot_recharge_ticks"`
	FireballOffset     float64 `yaml:"fireball_offset"` // Spawn distance in front of Peach
	HitPoints          int     `yaml:"hit_points"`
	DamagePerHit       int     `yaml:"damage_per_hit"`
}

// EnemyConfig defines Goomba and Koopa patrol parameters.
type EnemyConfig struct {
	MoveStep  float64 `yaml:"move_step"`
	KillScore int     `yaml:"kill_score"`
}

// PiranhaConfig defines the stationary shooter.
type PiranhaConfig struct {
	DetectionBand float64 `yaml:"detection_band"` // Vertical half-band, in sprite heights
	FiringRange   float64 `yaml:"firing_range"`   // Horizontal range, in sprite widths
	FiringDelay   int     `yaml:"firing_delay"`
}

// GoodiesConfig defines power-up movement and rewards.
type GoodiesConfig struct {
	MoveStep       float64 `yaml:"move_step"`
	FallStep       float64 `yaml:"fall_step"`
	ItemsPerBlock  int     `yaml:"items_per_block"`
	StarScore      int     `yaml:"star_score"`
	StarTicks      int     `yaml:"star_ticks"`
	FlowerScore    int     `yaml:"flower_score"`
	MushroomScore  int     `yaml:"mushroom_score"`
	PowerHitPoints int     `yaml:"power_hit_points"` // Hit points granted by flower and mushroom
}

// ProjectileConfig defines fireball and shell movement.
type ProjectileConfig struct {
	MoveStep float64 `yaml:"move_step"`
	FallStep float64 `yaml:"fall_step"`
}

// TargetsConfig defines the level goal bonuses.
type TargetsConfig struct {
	FlagScore  int `yaml:"flag_score"`
	MarioScore int `yaml:"mario_score"`
}

// GameplayConfig defines run-level rules owned by the frame driver.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
}

// GeneratorConfig tunes endless-mode level generation.
type GeneratorConfig struct {
	Width          int     `yaml:"width"`           // Level width in tiles
	GroundRows     int     `yaml:"ground_rows"`     // Thickness of the ground band
	GapThreshold   float64 `yaml:"gap_threshold"`   // Noise above this opens a gap
	PlatformChance float64 `yaml:"platform_chance"` // Noise above this places a floating run
	EnemyDensity   float64 `yaml:"enemy_density"`   // Base enemies per ground column
	GoodieChance   float64 `yaml:"goodie_chance"`   // Chance a platform tile is a goodie block
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyMultiplier      float64 `yaml:"enemy_multiplier"`       // Extra enemy density at max difficulty
	FiringDelayReduction int     `yaml:"firing_delay_reduction"` // Piranha delay reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty or unknown strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
