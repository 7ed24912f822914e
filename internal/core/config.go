package core

// RuntimeConfig contains host settings passed to game factories.
type RuntimeConfig struct {
	TickRate   int    // Simulation ticks per second
	Seed       int64  // RNG seed for deterministic gameplay (0 = time based)
	ConfigPath string // Optional per-game YAML override
	Difficulty string // Difficulty preset name, empty for the config's own setting
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 25,
		Seed:     0, // 0 means use current time in platform layer
	}
}
