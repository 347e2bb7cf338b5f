package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// BrickState is the plain serializable form of a Brick.
type BrickState struct {
	Type      int       `yaml:"type"`
	Bounds    geom.Rect `yaml:"bounds"`
	Hits      int       `yaml:"hits"`
	Destroyed bool      `yaml:"destroyed"`
	Pickup    int       `yaml:"pickup"`
}

// SavedPowerup is the serializable form of an in-flight pickup.
type SavedPowerup struct {
	Type int      `yaml:"type"`
	Pos  geom.Vec `yaml:"pos"`
	Vel  geom.Vec `yaml:"vel"`
	Size float64  `yaml:"size"`
}

// EndgameSnapshot is a complete capture of one game in progress: progress
// counters, effect timers, every entity, and the pickups still falling.
// It round-trips exactly through Snapshot and LoadSnapshot.
//
// The config echo records how the game was configured so a save can be
// resumed under the same rules. The engine does not fill those fields; the
// persistence layer does.
type EndgameSnapshot struct {
	Name       string `yaml:"name"`
	ConfigName string `yaml:"config_name"`

	ConfigBallSpeed     int   `yaml:"config_ball_speed"`
	ConfigRandomSeed    int64 `yaml:"config_random_seed"`
	ConfigStartingLevel int   `yaml:"config_starting_level"`

	Level           int `yaml:"level"`
	Score           int `yaml:"score"`
	Lives           int `yaml:"lives"`
	ComboStreak     int `yaml:"combo_streak"`
	ScoreMultiplier int `yaml:"score_multiplier"`

	ExpandTimer          float64 `yaml:"expand_timer"`
	SpeedBoostTimer      float64 `yaml:"speed_boost_timer"`
	PointMultiplier      int     `yaml:"point_multiplier"`
	PointMultiplierTimer float64 `yaml:"point_multiplier_timer"`
	BigBallTimer         float64 `yaml:"big_ball_timer"`

	Bounds       geom.Rect      `yaml:"bounds"`
	Ball         BallState      `yaml:"ball"`
	Paddle       PaddleState    `yaml:"paddle"`
	BallAttached bool           `yaml:"ball_attached"`
	Bricks       []BrickState   `yaml:"bricks"`
	Powerups     []SavedPowerup `yaml:"powerups"`
}

// State captures the brick as plain data.
func (b *Brick) State() BrickState {
	return BrickState{
		Type:      int(b.Type),
		Bounds:    b.Bounds,
		Hits:      b.Hits,
		Destroyed: b.Destroyed,
		Pickup:    b.Pickup,
	}
}

// brickFromState rebuilds a brick from saved state. Unknown type tags
// report false and yield no brick.
func brickFromState(s BrickState) (Brick, bool) {
	switch BrickType(s.Type) {
	case BrickNormal, BrickDurable, BrickIndestructible:
	default:
		return Brick{}, false
	}
	return Brick{
		Type:      BrickType(s.Type),
		Bounds:    s.Bounds,
		Hits:      s.Hits,
		Destroyed: s.Destroyed,
		Pickup:    s.Pickup,
	}, true
}

// Snapshot captures the full simulation state under the given save name and
// the name of the config profile it was played with.
func (e *Engine) Snapshot(name, configName string) EndgameSnapshot {
	snap := EndgameSnapshot{
		Name:                 name,
		ConfigName:           configName,
		Level:                e.currentLevel,
		Score:                e.score,
		Lives:                e.lives,
		ComboStreak:          e.comboStreak,
		ScoreMultiplier:      e.scoreMultiplier,
		ExpandTimer:          e.expandTimer,
		SpeedBoostTimer:      e.speedBoostTimer,
		PointMultiplier:      e.pointMultiplier,
		PointMultiplierTimer: e.pointMultiplierTimer,
		BigBallTimer:         e.bigBallTimer,
		Bounds:               e.bounds,
		Ball:                 e.ball.State(),
		Paddle:               e.paddle.State(),
		BallAttached:         e.ballAttached,
	}

	snap.Bricks = make([]BrickState, 0, len(e.bricks))
	for i := range e.bricks {
		snap.Bricks = append(snap.Bricks, e.bricks[i].State())
	}

	snap.Powerups = make([]SavedPowerup, 0, len(e.powerups))
	for _, p := range e.powerups {
		snap.Powerups = append(snap.Powerups, SavedPowerup{
			Type: int(p.Type),
			Pos:  p.Pos,
			Vel:  p.Vel,
			Size: p.Size,
		})
	}

	return snap
}

// LoadSnapshot overwrites the entire simulation with the saved state.
// Saved values are restored verbatim, with two exceptions: the
// level-complete flag is reset rather than restored, and the level's base
// paddle width is re-derived from the level index so an expand effect
// captured mid-flight still expires back to the proper width. Bricks with
// unknown type tags are skipped; everything else is taken on trust, as the
// persistence layer validates snapshots before they get here.
func (e *Engine) LoadSnapshot(snap EndgameSnapshot) {
	e.bounds = snap.Bounds
	e.score = snap.Score
	e.lives = snap.Lives
	e.currentLevel = snap.Level
	e.ball.Restore(snap.Ball)
	e.paddle.Restore(snap.Paddle)
	e.ballAttached = snap.BallAttached
	e.levelComplete = false
	e.comboStreak = snap.ComboStreak
	e.scoreMultiplier = snap.ScoreMultiplier
	e.expandTimer = snap.ExpandTimer
	e.speedBoostTimer = snap.SpeedBoostTimer
	e.pointMultiplier = snap.PointMultiplier
	e.pointMultiplierTimer = snap.PointMultiplierTimer
	e.bigBallTimer = snap.BigBallTimer
	e.levelBasePaddleWidth = levelBaseWidth(snap.Level)

	e.powerups = nil
	for _, saved := range snap.Powerups {
		e.powerups = append(e.powerups, Powerup{
			Type: PowerupType(saved.Type),
			Pos:  saved.Pos,
			Vel:  saved.Vel,
			Size: saved.Size,
		})
	}

	e.bricks = nil
	for _, s := range snap.Bricks {
		if b, ok := brickFromState(s); ok {
			e.bricks = append(e.bricks, b)
		}
	}
}
