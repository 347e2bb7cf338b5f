// Package config provides YAML-based named player profiles: difficulty
// scale, seeding, starting level, and level pack selection.
package config

// Config is one named profile. BallSpeed is a 1-10 difficulty scale mapped
// to pixels per second at the engine boundary; RandomSeed -1 means each run
// is seeded from the clock.
type Config struct {
	Name          string `yaml:"name"`
	PlayerName    string `yaml:"player_name"`
	BallSpeed     int    `yaml:"ball_speed"`
	RandomSeed    int64  `yaml:"random_seed"`
	StartingLevel int    `yaml:"starting_level"`
	LevelPack     string `yaml:"level_pack"`
}

// Clamp forces the profile's fields into their valid ranges.
func (c *Config) Clamp() {
	if c.BallSpeed < 1 {
		c.BallSpeed = 1
	}
	if c.BallSpeed > 10 {
		c.BallSpeed = 10
	}
	if c.StartingLevel < 1 {
		c.StartingLevel = 1
	}
	if c.LevelPack == "" {
		c.LevelPack = "classic"
	}
	if c.PlayerName == "" {
		c.PlayerName = "player"
	}
}

// MapBallSpeed converts the 1-10 difficulty scale to a ball speed in pixels
// per second: 180 at the low end, 360 at the top.
func MapBallSpeed(scale int) float64 {
	if scale < 1 {
		scale = 1
	}
	if scale > 10 {
		scale = 10
	}
	return 160 + 20*float64(scale)
}
