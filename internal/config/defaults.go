package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/space.yaml
var defaultSpaceYAML []byte

//go:embed defaults/t2048.yaml
var defaultTTFEYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickRate:  25,
		FadeTicks: 25,
	}
}

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Viewport: Viewport{Width: 70, Height: 24},
		Physics: FlappyPhysics{
			Gravity:      0.02,
			Lift:         -0.05,
			LiftTicks:    5,
			MaxFallSpeed: 0.8,
			BaseSpeed:    0.6,
			SparkSpeed:   1.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  60,
			MinGapSize:   7,
			MaxGapSize:   10,
			TopMargin:    2,
			BottomMargin: 2,
			Points:       5,
		},
		Player: FlappyPlayer{
			X:      10,
			Radius: 1.0,
		},
		Background: Background{StarEvery: 10},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				GapReduction:     3,
				SpacingReduction: 20,
			},
		},
	}
}

// DefaultSpaceConfig returns the default Space configuration.
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		Viewport: Viewport{Width: 60, Height: 36},
		Player: SpacePlayer{
			KeyStep:  4,
			Follow:   0.1,
			Cooldown: 3,
		},
		Bullet: SpaceBullet{
			Speed:  0.8,
			Accel:  0.04,
			Points: 10,
		},
		Centipede: SpaceCentipede{
			Length:   20,
			Radius:   1.0,
			Wander:   15,
			Approach: 0.1,
		},
		Invaders: SpaceInvaders{
			Rows:     4,
			Cols:     8,
			DownTime: 5,
		},
		Balls: SpaceBalls{
			Every:    20,
			Duration: 500,
		},
		Sierpinski: SpaceSierpinski{
			Cutoff:   3,
			Speed:    0.08,
			Duration: 500,
		},
		Background: Background{StarChance: 10},
	}
}

// DefaultTTFEConfig returns the default 2048 configuration.
func DefaultTTFEConfig() TTFEConfig {
	return TTFEConfig{
		Viewport: Viewport{Width: 40, Height: 20},
		Board: TTFEBoard{
			Size:       4,
			TileWidth:  8,
			TileHeight: 4,
		},
		MoveTicks:  5,
		FourChance: 10,
		StarEvery:  5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "engine":
		return defaultEngineYAML
	case "flappy":
		return defaultFlappyYAML
	case "space":
		return defaultSpaceYAML
	case "t2048":
		return defaultTTFEYAML
	default:
		return nil
	}
}
