package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Load loads the stadium configuration.
// Search order: customPath -> ~/.stadium/configs/stadium.yaml -> ./configs/stadium.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (StadiumConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StadiumConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StadiumConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stadium.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "stadium.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStadiumYAML)
	if err != nil {
		return DefaultStadiumConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (StadiumConfig, error) {
	cfg := DefaultStadiumConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StadiumConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return StadiumConfig{}, err
	}
	return cfg, nil
}

// Validate clamps soft limits and rejects values the simulation cannot run with.
// The runner count is clamped to [MinRunners, MaxRunners] rather than rejected.
func (c *StadiumConfig) Validate() error {
	c.Race.Runners = ClampRunners(c.Race.Runners)

	if c.Race.TickInterval <= 0 {
		return fmt.Errorf("%w: race.tick_interval must be positive, got %s", ErrInvalid, c.Race.TickInterval)
	}
	if c.Race.StrategyDelay < 0 {
		return fmt.Errorf("%w: race.strategy_delay must not be negative", ErrInvalid)
	}
	if len(c.Race.Runner.Palette) == 0 {
		c.Race.Runner.Palette = append([]string(nil), DefaultPalette...)
	}
	if c.Race.Runner.StartLanes < 1 {
		c.Race.Runner.StartLanes = 1
	}

	s := c.Race.Strategy
	if s.BoostChance < 0 || s.BoostChance > 1 {
		return fmt.Errorf("%w: race.strategy.boost_chance must be in [0,1], got %v", ErrInvalid, s.BoostChance)
	}
	if s.BoostFactor <= 0 || s.FinishDecay <= 0 {
		return fmt.Errorf("%w: race.strategy speed multipliers must be positive", ErrInvalid)
	}
	if s.MaxLane < 0 {
		return fmt.Errorf("%w: race.strategy.max_lane must not be negative", ErrInvalid)
	}

	t := c.Track
	if t.StraightLength <= 0 || t.CurveRadius <= 0 || t.LaneWidth <= 0 {
		return fmt.Errorf("%w: track dimensions must be positive", ErrInvalid)
	}
	if t.Lanes < 1 || t.Laps < 1 {
		return fmt.Errorf("%w: track needs at least one lane and one lap", ErrInvalid)
	}

	if c.Camera.FrameRate <= 0 {
		c.Camera.FrameRate = DefaultCameraConfig().FrameRate
	}
	if c.Commentary.Interval <= 0 {
		return fmt.Errorf("%w: commentary.interval must be positive", ErrInvalid)
	}
	if c.Commentary.Timeout <= 0 {
		c.Commentary.Timeout = DefaultCommentaryConfig().Timeout
	}
	return nil
}

// ClampRunners restricts a runner count to the supported range.
func ClampRunners(n int) int {
	if n < MinRunners {
		return MinRunners
	}
	if n > MaxRunners {
		return MaxRunners
	}
	return n
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stadium", "configs", filename)
}
