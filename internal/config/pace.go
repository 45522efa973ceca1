package config

// PacePreset represents a named race temperament.
type PacePreset string

const (
	PaceCalm    PacePreset = "calm"
	PaceNormal  PacePreset = "normal"
	PaceFrantic PacePreset = "frantic"
)

// Valid reports whether the preset is known. The empty preset is valid and
// leaves the configuration untouched.
func (p PacePreset) Valid() bool {
	switch p {
	case "", PaceCalm, PaceNormal, PaceFrantic:
		return true
	default:
		return false
	}
}

// ApplyPacePreset sets booster frequency and strength, speed wobble and the
// base speed spread for a preset. Every preset sets all four, so the result
// does not depend on what the YAML said. Normal restores the stock tuning;
// unknown or empty presets are ignored.
func ApplyPacePreset(cfg *RaceConfig, preset PacePreset) {
	defaults := DefaultRaceConfig()
	stock := defaults.Strategy

	switch preset {
	case PaceCalm:
		cfg.Strategy.BoostChance = stock.BoostChance * 0.4
		cfg.Strategy.BoostFactor = 1.5
		cfg.Strategy.WobbleAmplitude = stock.WobbleAmplitude * 0.5
		cfg.Runner.BaseSpeedSpread = defaults.Runner.BaseSpeedSpread * 0.75
	case PaceNormal:
		cfg.Strategy.BoostChance = stock.BoostChance
		cfg.Strategy.BoostFactor = stock.BoostFactor
		cfg.Strategy.WobbleAmplitude = stock.WobbleAmplitude
		cfg.Runner.BaseSpeedSpread = defaults.Runner.BaseSpeedSpread
	case PaceFrantic:
		cfg.Strategy.BoostChance = stock.BoostChance * 2.5
		cfg.Strategy.BoostFactor = 2.1
		cfg.Strategy.WobbleAmplitude = stock.WobbleAmplitude * 2
		cfg.Runner.BaseSpeedSpread = defaults.Runner.BaseSpeedSpread * 1.5
	}
}
