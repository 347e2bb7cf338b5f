package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/default.yaml
var defaultYAML []byte

// Default returns the builtin default profile.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// Fallback to hardcoded if embed fails
		return Config{
			Name:          "default",
			PlayerName:    "player",
			BallSpeed:     5,
			RandomSeed:    -1,
			StartingLevel: 1,
			LevelPack:     "classic",
		}
	}
	cfg.Clamp()
	return cfg
}
