package config

import "github.com/vovakirdan/entity-arcade/internal/core"

// Minimum values that keep a game playable at full difficulty.
const (
	MinGapSize  = 4
	MinInterval = 15
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.Clamp(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.Clamp(level, 0, 1)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Interpolate from initial level to 1.0
	return d.initialLevel + core.Clamp(progress, 0, 1)*(1.0-d.initialLevel)
}

// Speed scales baseSpeed up to baseSpeed * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks baseGap by up to gap_reduction, never below MinGapSize.
func (d *DifficultyManager) GapSize(baseGap, score, ticks int) int {
	return d.reduce(baseGap, d.cfg.Scaling.GapReduction, MinGapSize, score, ticks)
}

// Interval shrinks the tick interval between obstacles by up to
// spacing_reduction, never below MinInterval.
func (d *DifficultyManager) Interval(baseTicks, score, ticks int) int {
	return d.reduce(baseTicks, d.cfg.Scaling.SpacingReduction, MinInterval, score, ticks)
}

func (d *DifficultyManager) reduce(base, by, floor, score, ticks int) int {
	level := d.Level(score, ticks)
	result := base - int(level*float64(by))
	return max(result, floor)
}
