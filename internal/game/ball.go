package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// Ball is the projectile. Its position is the center of the ball.
type Ball struct {
	pos    geom.Vec
	vel    geom.Vec
	radius float64
}

// BallState is the plain serializable form of a Ball.
type BallState struct {
	Pos    geom.Vec `yaml:"pos"`
	Vel    geom.Vec `yaml:"vel"`
	Radius float64  `yaml:"radius"`
}

// NewBall returns a motionless ball of the given radius at the origin.
func NewBall(radius float64) Ball {
	return Ball{radius: radius}
}

func (b *Ball) Position() geom.Vec { return b.pos }
func (b *Ball) Velocity() geom.Vec { return b.vel }
func (b *Ball) Radius() float64    { return b.radius }

func (b *Ball) SetPosition(p geom.Vec) { b.pos = p }
func (b *Ball) SetVelocity(v geom.Vec) { b.vel = v }
func (b *Ball) SetRadius(r float64)    { b.radius = r }

// Bounds returns the square box enclosing the ball.
func (b *Ball) Bounds() geom.Rect {
	return geom.Rect{
		X: b.pos.X() - b.radius,
		Y: b.pos.Y() - b.radius,
		W: b.radius * 2,
		H: b.radius * 2,
	}
}

// SetSpeedPreserveDirection rescales the velocity to the given speed without
// changing its direction. A motionless ball stays motionless.
func (b *Ball) SetSpeedPreserveDirection(speed float64) {
	b.vel = geom.Normalize(b.vel).Mul(speed)
}

// State captures the ball as plain data.
func (b *Ball) State() BallState {
	return BallState{Pos: b.pos, Vel: b.vel, Radius: b.radius}
}

// Restore overwrites the ball from previously captured state.
func (b *Ball) Restore(s BallState) {
	b.pos = s.Pos
	b.vel = s.Vel
	b.radius = s.Radius
}
