package config

// Preset is a named difficulty shorthand for the 1-10 ball speed scale.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// BallSpeedForPreset returns the scale value a preset stands for.
func BallSpeedForPreset(p Preset) int {
	switch p {
	case PresetEasy:
		return 3
	case PresetHard:
		return 8
	default:
		return 5
	}
}

// IsValidPreset reports whether the string names a known preset.
func IsValidPreset(p Preset) bool {
	switch p {
	case PresetEasy, PresetNormal, PresetHard:
		return true
	}
	return false
}

// ApplyPreset overwrites the profile's difficulty from a preset.
func ApplyPreset(cfg *Config, p Preset) {
	cfg.BallSpeed = BallSpeedForPreset(p)
}
