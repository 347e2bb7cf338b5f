// Package game implements the simulation core of a brick-breaking arcade
// game: a deterministic world of ball, paddle, bricks, and falling pickups
// advanced in discrete time steps, with full snapshot and restore.
package game

import (
	"math"

	"github.com/vovakirdan/brickstorm/internal/geom"
)

// Defaults for a freshly constructed engine.
const (
	defaultBallRadius   = 8.0
	defaultBallSpeed    = 260.0 // Pixels per second
	defaultPaddleWidth  = 110.0
	defaultPaddleHeight = 20.0
	defaultPaddleSpeed  = 280.0 // Pixels per second
	defaultFieldWidth   = 640.0
	defaultFieldHeight  = 480.0
	defaultLives        = 3
)

// Pickup and effect tuning.
const (
	powerupSpawnChance   = 0.5   // Chance an unassigned brick drops a pickup
	powerupFallSpeed     = 120.0 // Pixels per second
	powerupSize          = 14.0
	expandWidthBonus     = 70.0 // Extra paddle width in pixels
	expandDuration       = 12.0 // Seconds
	speedBoostDuration   = 10.0 // Seconds
	speedBoostMultiplier = 1.5
	pointMultDuration    = 15.0 // Seconds
	bigBallDuration      = 15.0 // Seconds
	effectTimerCap       = 60.0 // Stacked effect timers never exceed this
	maxPaddleWidth       = 320.0
	maxLives             = 5
	maxPointMultiplier   = 10
	brickPoints          = 100
)

// Paddle sizing per level; deeper levels get a narrower paddle.
const (
	basePaddleWidth      = 200.0
	paddleShrinkPerLevel = 20.0
	minPaddleWidth       = 100.0
)

// EffectState is a read-only summary of the timed pickup effects.
type EffectState struct {
	ExpandRemaining          float64
	SpeedBoostRemaining      float64
	PointMultiplier          int
	PointMultiplierRemaining float64
	BigBallRemaining         float64
}

// Engine drives one game of brick breaking. All state lives here; two
// engines constructed with the same seed and stepped with the same inputs
// evolve identically.
type Engine struct {
	levels *LevelSet
	rng    *Rand

	ball     Ball
	paddle   Paddle
	bricks   []Brick
	powerups []Powerup

	bounds        geom.Rect
	score         int
	lives         int
	currentLevel  int
	startingLevel int
	ballSpeed     float64
	baseBallSpeed float64
	ballAttached  bool
	levelComplete bool

	comboStreak     int
	scoreMultiplier int

	expandTimer          float64
	speedBoostTimer      float64
	pointMultiplier      int
	pointMultiplierTimer float64
	bigBallTimer         float64

	levelBasePaddleWidth float64
	baseBallRadius       float64
}

// New creates an engine loaded with the default campaign and starts a new
// game. The seed drives pickup spawning; reconfigure with the setters and
// call NewGame again to restart under different rules.
func New(seed int64) *Engine {
	e := &Engine{
		levels:               NewLevelSet(DefaultLayouts()),
		rng:                  NewRand(seed),
		ball:                 NewBall(defaultBallRadius),
		paddle:               NewPaddle(defaultPaddleWidth, defaultPaddleHeight, defaultPaddleSpeed),
		bounds:               geom.Rect{W: defaultFieldWidth, H: defaultFieldHeight},
		lives:                defaultLives,
		currentLevel:         1,
		startingLevel:        1,
		ballSpeed:            defaultBallSpeed,
		baseBallSpeed:        defaultBallSpeed,
		scoreMultiplier:      1,
		pointMultiplier:      1,
		levelBasePaddleWidth: defaultPaddleWidth,
		baseBallRadius:       defaultBallRadius,
	}
	e.NewGame()
	return e
}

// SetPlayfield changes the world bounds. Takes effect on the next game or
// level reset.
func (e *Engine) SetPlayfield(bounds geom.Rect) { e.bounds = bounds }

// SetLevels replaces the campaign layouts. Takes effect on the next game or
// level reset.
func (e *Engine) SetLevels(layouts [][]string) { e.levels = NewLevelSet(layouts) }

// SetBallSpeed changes the base ball speed, rescaling any current motion.
func (e *Engine) SetBallSpeed(speed float64) {
	e.ballSpeed = speed
	e.baseBallSpeed = speed
	e.ball.SetSpeedPreserveDirection(speed)
}

// SetRandomSeed reseeds the pickup generator.
func (e *Engine) SetRandomSeed(seed int64) { e.rng = NewRand(seed) }

// SetStartingLevel picks the level NewGame begins at. Levels missing from
// the campaign fall back to 1.
func (e *Engine) SetStartingLevel(level int) { e.startingLevel = level }

// NewGame starts a fresh run: score and lives reset, effects cleared, play
// begins with the ball served from the paddle at the starting level.
func (e *Engine) NewGame() {
	e.score = 0
	e.lives = defaultLives
	e.levelComplete = false
	e.comboStreak = 0
	e.scoreMultiplier = 1
	e.clearEffects()
	e.powerups = nil

	start := max(1, e.startingLevel)
	if !e.levels.Has(start) {
		start = 1
	}
	e.currentLevel = start

	e.ResetLevel(e.currentLevel)
	e.attachBall()
}

// ResetLevel rebuilds the given level from its layout, resizes the paddle
// for it, and reseats the paddle and ball. Score and lives carry over;
// combo, effects, and falling pickups are cleared. The ball is left in
// flight; call LaunchBall semantics via RestartLevel or NewGame when a
// serve is wanted instead.
func (e *Engine) ResetLevel(level int) {
	e.currentLevel = level
	e.levelComplete = false
	e.comboStreak = 0
	e.scoreMultiplier = 1
	e.clearEffects()
	e.powerups = nil

	// Fit the brick grid to the playfield, leaving an 8px margin all round.
	maxCols := e.levels.MaxColumns(level)
	if maxCols == 0 {
		maxCols = 12
	}
	brickWidth := (e.bounds.W - 16) / float64(maxCols)
	const brickHeight = 28.0
	offsetX := e.bounds.X + 8
	offsetY := e.bounds.Y + 8

	e.levelBasePaddleWidth = levelBaseWidth(level)
	e.paddle.SetSize(e.levelBasePaddleWidth, e.paddle.Height())

	e.bricks = e.levels.Build(level, brickWidth, brickHeight, offsetX, offsetY)
	e.positionPaddleAndBall()
	e.ballAttached = false
}

// RestartLevel replays the current level from scratch with the ball served
// from the paddle.
func (e *Engine) RestartLevel() {
	e.ResetLevel(e.currentLevel)
	e.attachBall()
}

// LaunchBall releases an attached ball straight up at the base speed.
func (e *Engine) LaunchBall() {
	if !e.ballAttached {
		return
	}
	e.ballAttached = false
	e.ball.SetVelocity(geom.V(0, -e.ballSpeed))
}

// AdvanceLevel moves play to the next level with score and lives carried
// over, reporting false when the campaign has no further level.
func (e *Engine) AdvanceLevel() bool {
	if !e.levels.Has(e.currentLevel + 1) {
		return false
	}
	// Clear destroyed flags on the outgoing bricks before the rebuild.
	for i := range e.bricks {
		e.bricks[i].Destroyed = false
	}
	e.ResetLevel(e.currentLevel + 1)
	e.attachBall()
	e.levelComplete = false
	return true
}

// MovePaddleLeft slides the paddle left for dt seconds, stopping at the
// playfield edge.
func (e *Engine) MovePaddleLeft(dt float64) { e.paddle.MoveLeft(dt, e.bounds.Left()) }

// MovePaddleRight slides the paddle right for dt seconds, stopping at the
// playfield edge.
func (e *Engine) MovePaddleRight(dt float64) { e.paddle.MoveRight(dt, e.bounds.Right()) }

// Update advances the simulation by dt seconds. Once the game is over or
// the level is complete it does nothing; callers decide when to restart or
// advance.
func (e *Engine) Update(dt float64) {
	if e.GameOver() || e.levelComplete {
		return
	}

	e.updatePowerups(dt)

	if e.ballAttached {
		e.glueBallToPaddle()
		return
	}

	// Rule on a lost ball before running physics so collisions are not
	// processed after the ball is gone.
	if e.ball.Bounds().Bottom() >= e.bounds.Bottom() {
		e.lives--
		e.resetCombo()
		if !e.GameOver() {
			e.positionPaddleAndBall()
			e.attachBall()
		}
		return
	}

	wasDestroyed := make([]bool, len(e.bricks))
	for i := range e.bricks {
		wasDestroyed[i] = e.bricks[i].Destroyed
	}

	destroyed := ResolveBrickCollisions(&e.ball, e.bricks, dt, e.bigBallTimer > 0)

	if destroyed > 0 {
		e.comboStreak += destroyed
		e.scoreMultiplier = clampInt(1+e.comboStreak/3, 1, 5)
		e.score += destroyed * brickPoints * e.scoreMultiplier * e.pointMultiplier

		// Drop pickups for the bricks destroyed this step. A brick with an
		// assigned pickup always drops it; the rest roll the spawn chance.
		for i := range e.bricks {
			if wasDestroyed[i] || !e.bricks[i].Destroyed {
				continue
			}
			center := e.bricks[i].Bounds.Center()
			if t := e.bricks[i].Pickup; t >= 0 && t <= 4 {
				e.spawnPowerup(center, PowerupType(t))
			} else if e.rng.Float64() < powerupSpawnChance {
				e.spawnRandomPowerup(center)
			}
		}
	}

	ResolveWallCollision(&e.ball, e.bounds)

	if ResolvePaddleCollision(&e.ball, &e.paddle) {
		e.resetCombo()
	}

	if e.LevelCleared() {
		e.levelComplete = true
		e.attachBall()
	}
}

// Ball returns the live ball. Mutating it changes the simulation.
func (e *Engine) Ball() *Ball { return &e.ball }

// Paddle returns the live paddle. Mutating it changes the simulation.
func (e *Engine) Paddle() *Paddle { return &e.paddle }

// Bricks returns the live brick slice in layout order. Destroyed bricks
// stay in place with their flag set until the level is rebuilt.
func (e *Engine) Bricks() []Brick { return e.bricks }

// Powerups returns the pickups currently falling.
func (e *Engine) Powerups() []Powerup { return e.powerups }

// Playfield returns the world bounds.
func (e *Engine) Playfield() geom.Rect { return e.bounds }

func (e *Engine) Score() int           { return e.score }
func (e *Engine) Lives() int           { return e.lives }
func (e *Engine) Level() int           { return e.currentLevel }
func (e *Engine) ComboStreak() int     { return e.comboStreak }
func (e *Engine) ScoreMultiplier() int { return e.scoreMultiplier }
func (e *Engine) BallAttached() bool   { return e.ballAttached }

// LevelCleared reports whether no breakable bricks remain.
func (e *Engine) LevelCleared() bool { return e.breakableCount() == 0 }

// LevelComplete reports whether the cleared level has been latched; once
// set, Update freezes until the level is advanced or restarted.
func (e *Engine) LevelComplete() bool { return e.levelComplete }

// HasNextLevel reports whether another level follows the current one.
func (e *Engine) HasNextLevel() bool { return e.levels.Has(e.currentLevel + 1) }

// GameOver reports whether all lives are spent.
func (e *Engine) GameOver() bool { return e.lives <= 0 }

// BigBallActive reports whether the big-ball effect is running.
func (e *Engine) BigBallActive() bool { return e.bigBallTimer > 0 }

// Effects returns the timed effect state for display.
func (e *Engine) Effects() EffectState {
	return EffectState{
		ExpandRemaining:          e.expandTimer,
		SpeedBoostRemaining:      e.speedBoostTimer,
		PointMultiplier:          e.pointMultiplier,
		PointMultiplierRemaining: e.pointMultiplierTimer,
		BigBallRemaining:         e.bigBallTimer,
	}
}

func (e *Engine) attachBall() {
	e.ballAttached = true
	e.ball.SetVelocity(geom.V(0, 0))
	e.glueBallToPaddle()
}

func (e *Engine) glueBallToPaddle() {
	e.ball.SetPosition(geom.V(
		e.paddle.Position().X()+e.paddle.Width()*0.5,
		e.paddle.Position().Y()-e.ball.Radius()-1,
	))
}

func (e *Engine) positionPaddleAndBall() {
	paddleY := e.bounds.Bottom() - e.paddle.Height() - 12
	paddleX := e.bounds.X + e.bounds.W*0.5 - e.paddle.Width()*0.5
	e.paddle.SetPosition(geom.V(paddleX, paddleY))
	e.ball.SetPosition(geom.V(
		e.paddle.Position().X()+e.paddle.Width()*0.5,
		e.paddle.Position().Y()-e.ball.Radius()-1,
	))
	e.ball.SetVelocity(geom.V(0, -e.ballSpeed))
}

func (e *Engine) breakableCount() int {
	count := 0
	for i := range e.bricks {
		if e.bricks[i].Breakable() && !e.bricks[i].Destroyed {
			count++
		}
	}
	return count
}

func (e *Engine) resetCombo() {
	e.comboStreak = 0
	e.scoreMultiplier = 1
}

func (e *Engine) spawnRandomPowerup(pos geom.Vec) {
	roll := e.rng.Float64()
	var t PowerupType
	switch {
	case roll < 0.2:
		t = PowerExpandPaddle
	case roll < 0.4:
		t = PowerExtraLife
	case roll < 0.6:
		t = PowerSpeedBoost
	case roll < 0.8:
		t = PowerPointMultiplier
	default:
		t = PowerBigBall
	}
	e.spawnPowerup(pos, t)
}

func (e *Engine) spawnPowerup(pos geom.Vec, t PowerupType) {
	e.powerups = append(e.powerups, Powerup{
		Type: t,
		Pos:  pos,
		Vel:  geom.V(0, powerupFallSpeed),
		Size: powerupSize,
	})
}

func (e *Engine) applyPowerup(p Powerup) {
	switch p.Type {
	case PowerExpandPaddle:
		centerX := e.paddle.Position().X() + e.paddle.Width()*0.5
		targetWidth := clampFloat(e.levelBasePaddleWidth+expandWidthBonus, e.levelBasePaddleWidth, maxPaddleWidth)
		e.paddle.SetSize(targetWidth, e.paddle.Height())
		newX := centerX - targetWidth*0.5
		// Keep the wider paddle inside the playfield.
		newX = clampFloat(newX, e.bounds.Left(), e.bounds.Right()-targetWidth)
		e.paddle.SetPosition(geom.V(newX, e.paddle.Position().Y()))
		e.expandTimer = math.Min(e.expandTimer+expandDuration, effectTimerCap)
	case PowerExtraLife:
		e.lives = min(e.lives+1, maxLives)
	case PowerSpeedBoost:
		e.speedBoostTimer = math.Min(e.speedBoostTimer+speedBoostDuration, effectTimerCap)
		e.ball.SetSpeedPreserveDirection(e.baseBallSpeed * speedBoostMultiplier)
	case PowerPointMultiplier:
		e.pointMultiplier = min(e.pointMultiplier+2, maxPointMultiplier)
		e.pointMultiplierTimer = math.Min(e.pointMultiplierTimer+pointMultDuration, effectTimerCap)
	case PowerBigBall:
		// Fixed duration, not stacked; the radius doubles from the base so
		// repeat pickups cannot compound it.
		e.bigBallTimer = bigBallDuration
		e.ball.SetRadius(e.baseBallRadius * 2)
	}
}

// updatePowerups runs the effect timers and moves falling pickups,
// collecting those that reach the paddle and dropping those that leave the
// playfield.
func (e *Engine) updatePowerups(dt float64) {
	if e.expandTimer > 0 {
		e.expandTimer -= dt
		if e.expandTimer <= 0 {
			centerX := e.paddle.Position().X() + e.paddle.Width()*0.5
			e.paddle.SetSize(e.levelBasePaddleWidth, e.paddle.Height())
			e.paddle.SetPosition(geom.V(centerX-e.levelBasePaddleWidth*0.5, e.paddle.Position().Y()))
			e.expandTimer = 0
		}
	}
	if e.speedBoostTimer > 0 {
		e.speedBoostTimer -= dt
		if e.speedBoostTimer <= 0 {
			e.ball.SetSpeedPreserveDirection(e.baseBallSpeed)
			e.speedBoostTimer = 0
		}
	}
	if e.pointMultiplierTimer > 0 {
		e.pointMultiplierTimer -= dt
		if e.pointMultiplierTimer <= 0 {
			e.pointMultiplier = 1
			e.pointMultiplierTimer = 0
		}
	}
	if e.bigBallTimer > 0 {
		e.bigBallTimer -= dt
		if e.bigBallTimer <= 0 {
			e.bigBallTimer = 0
			e.ball.SetRadius(e.baseBallRadius)
		}
	}

	if len(e.powerups) == 0 {
		return
	}

	next := e.powerups[:0]
	paddleBox := e.paddle.Bounds()
	for _, p := range e.powerups {
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		box := p.Bounds()
		if geom.Intersects(box, paddleBox) {
			e.applyPowerup(p)
			continue
		}
		if box.Top() > e.bounds.Bottom() {
			continue
		}
		next = append(next, p)
	}
	e.powerups = next
}

// clearEffects cancels every running effect and restores the paddle width,
// ball speed, and ball radius to their level baselines.
func (e *Engine) clearEffects() {
	e.expandTimer = 0
	e.speedBoostTimer = 0
	e.pointMultiplier = 1
	e.pointMultiplierTimer = 0
	e.bigBallTimer = 0
	centerX := e.paddle.Position().X() + e.paddle.Width()*0.5
	e.paddle.SetSize(e.levelBasePaddleWidth, e.paddle.Height())
	e.paddle.SetPosition(geom.V(centerX-e.levelBasePaddleWidth*0.5, e.paddle.Position().Y()))
	e.ball.SetSpeedPreserveDirection(e.baseBallSpeed)
	e.ball.SetRadius(e.baseBallRadius)
}

// levelBaseWidth is the paddle width a level starts with, before any
// expand effect.
func levelBaseWidth(level int) float64 {
	width := basePaddleWidth - float64(level-1)*paddleShrinkPerLevel
	return math.Max(width, minPaddleWidth)
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(v, maxVal))
}
