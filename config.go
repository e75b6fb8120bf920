package crossmark

import "fmt"

// Config is the configuration for the Planner.
type Config struct {
	// TeamsPerStudent is the number of distinct teams each student reviews.
	// Every student must be left with at least this many candidate teams
	// after excluding their home team.
	// Recommended: 2.
	TeamsPerStudent int `yaml:"teamsPerStudent"`

	// MaxAttempts is how many fresh randomized draws the planner tries
	// before giving up when a draw runs out of candidate teams mid-way.
	// Each attempt reseeds the draw, so retries explore different orders.
	// Recommended: 10.
	MaxAttempts int `yaml:"maxAttempts"`

	// Seed is the seed phrase for the randomized draw. A decimal value is
	// used verbatim; any other string is hashed to a 64-bit seed. Leave
	// empty to draw a fresh random seed per run.
	//
	// The resolved seed appears in the plan and in the completion log, so
	// any published plan can be reproduced later.
	Seed string `yaml:"seed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		TeamsPerStudent: 2,
		MaxAttempts:     10,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.TeamsPerStudent == 0 {
		cfg.TeamsPerStudent = defaults.TeamsPerStudent
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	// Note: an empty Seed is valid (fresh random seed per run), so we don't apply a default
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - TeamsPerStudent >= 1 (each student reviews at least one team)
//   - MaxAttempts >= 1 (at least one draw attempt)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.TeamsPerStudent < 1 {
		return fmt.Errorf("TeamsPerStudent must be >= 1, got %d", cfg.TeamsPerStudent)
	}

	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("MaxAttempts must be >= 1, got %d", cfg.MaxAttempts)
	}

	return nil
}
