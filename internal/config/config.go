// Package config provides YAML-based engine and game configuration
// loading and difficulty management for the arcade.
package config

// EngineConfig holds settings for the simulation core and its timer.
type EngineConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Ticks per second
	FadeTicks int `yaml:"fade_ticks"` // Message fade-out window
}

// Viewport is a fixed game size in cells.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Viewport   Viewport         `yaml:"viewport"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Background Background       `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy, in cells and ticks.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration
	Lift         float64 `yaml:"lift"`           // Acceleration while flapping (negative is up)
	LiftTicks    int     `yaml:"lift_ticks"`     // Ticks of lift per key press
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal downward velocity
	BaseSpeed    float64 `yaml:"base_speed"`     // Pipe speed before difficulty scaling
	SparkSpeed   float64 `yaml:"spark_speed"`    // Initial speed of death sparks
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"` // Ticks between pipes
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
	Points       int `yaml:"points"` // Granted once per pipe passed
}

// FlappyPlayer defines the bird.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// Background controls decorative stars.
type Background struct {
	StarEvery  int `yaml:"star_every"`  // Spawn a star every N ticks (0 = use chance)
	StarChance int `yaml:"star_chance"` // Percent chance per tick
}

// SpaceConfig contains all configuration for the Space game.
type SpaceConfig struct {
	Viewport   Viewport        `yaml:"viewport"`
	Player     SpacePlayer     `yaml:"player"`
	Bullet     SpaceBullet     `yaml:"bullet"`
	Centipede  SpaceCentipede  `yaml:"centipede"`
	Invaders   SpaceInvaders   `yaml:"invaders"`
	Balls      SpaceBalls      `yaml:"balls"`
	Sierpinski SpaceSierpinski `yaml:"sierpinski"`
	Background Background      `yaml:"background"`
}

// SpacePlayer defines the ship.
type SpacePlayer struct {
	KeyStep  float64 `yaml:"key_step"` // Target shift per arrow key press
	Follow   float64 `yaml:"follow"`   // Fraction of the distance to the target covered per tick
	Cooldown int     `yaml:"cooldown"` // Minimum ticks between shots
}

// SpaceBullet defines player shots.
type SpaceBullet struct {
	Speed  float64 `yaml:"speed"`  // Initial upward speed
	Accel  float64 `yaml:"accel"`  // Upward acceleration
	Points int     `yaml:"points"` // Per hit
}

// SpaceCentipede defines the centipede level.
type SpaceCentipede struct {
	Length   int     `yaml:"length"`
	Radius   float64 `yaml:"radius"`
	Wander   float64 `yaml:"wander"`   // Max distance of a random target
	Approach float64 `yaml:"approach"` // Fraction of the distance to the target covered per tick
}

// SpaceInvaders defines the formation level.
type SpaceInvaders struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	DownTime int `yaml:"down_time"` // Ticks spent moving down at each edge
}

// SpaceBalls defines the spinning balls level.
type SpaceBalls struct {
	Every    int `yaml:"every"`    // Ticks between balls
	Duration int `yaml:"duration"` // Level length in ticks
}

// SpaceSierpinski defines the triangle level.
type SpaceSierpinski struct {
	Cutoff   float64 `yaml:"cutoff"`   // Triangles narrower than this vanish
	Speed    float64 `yaml:"speed"`    // Downward speed
	Duration int     `yaml:"duration"` // Level length in ticks
}

// TTFEConfig contains all configuration for the 2048 game.
type TTFEConfig struct {
	Viewport   Viewport  `yaml:"viewport"`
	Board      TTFEBoard `yaml:"board"`
	MoveTicks  int       `yaml:"move_ticks"`  // Ticks a slide takes to land
	FourChance int       `yaml:"four_chance"` // Percent chance a spawned tile is a 4
	StarEvery  int       `yaml:"star_every"`  // Ticks between background stars (0 = none)
}

// TTFEBoard defines the tile grid, centered in the viewport.
type TTFEBoard struct {
	Size       int `yaml:"size"` // Cells per side
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
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

// ApplyPreset rewrites the difficulty block for a preset. The fixed preset
// turns progression off and keeps the configured initial level.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
