package config

import (
	_ "embed"
)

//go:embed defaults/peach.yaml
var defaultPeachYAML []byte

// DefaultPeachConfig returns the default Super Peach Sisters configuration.
// It mirrors defaults/peach.yaml and is used when the embedded copy fails to parse.
func DefaultPeachConfig() PeachConfig {
	return PeachConfig{
		Sprite: SpriteConfig{
			Width:  8,
			Height: 8,
		},
		Player: PlayerConfig{
			MoveStep:           4,
			FallStep:           4,
			JumpStep:           4,
			JumpDistance:       8,
			PowerJumpDistance:  12,
			InvincibilityTicks: 10,
			ShootRechargeTicks: 8,
			FireballOffset:     4,
			HitPoints:          1,
			DamagePerHit:       1,
		},
		Enemy: EnemyConfig{
			MoveStep:  1,
			KillScore: 100,
		},
		Piranha: PiranhaConfig{
			DetectionBand: 1.5,
			FiringRange:   8,
			FiringDelay:   40,
		},
		Goodies: GoodiesConfig{
			MoveStep:       2,
			FallStep:       2,
			ItemsPerBlock:  1,
			StarScore:      100,
			StarTicks:      150,
			FlowerScore:    50,
			MushroomScore:  75,
			PowerHitPoints: 2,
		},
		Projectile: ProjectileConfig{
			MoveStep: 2,
			FallStep: 2,
		},
		Targets: TargetsConfig{
			FlagScore:  1000,
			MarioScore: 1000,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			StartLevel: 1,
			GridWidth:  32,
			GridHeight: 32,
		},
		Generator: GeneratorConfig{
			Width:          96,
			GroundRows:     2,
			GapThreshold:   0.72,
			PlatformChance: 0.62,
			EnemyDensity:   0.08,
			GoodieChance:   0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				EnemyMultiplier:      1.5,
				FiringDelayReduction: 20,
			},
		},
	}
}
