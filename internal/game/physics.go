package game

import (
	"math"

	"github.com/vovakirdan/brickstorm/internal/geom"
)

// Collision times within this threshold of each other count as simultaneous.
const timeEpsilon = 0.0001

// PaddleReflection computes the outgoing velocity for a ball striking the
// paddle at hitRatio, the signed offset from the paddle center measured in
// half widths. The exit angle sweeps from 150 degrees at the far left edge
// through 90 at the center down to 30 at the far right; speed is preserved.
func PaddleReflection(incoming geom.Vec, hitRatio float64) geom.Vec {
	const theta0 = math.Pi / 2
	const k = math.Pi / 3

	// Negative hitRatio (left half) yields exit angles above 90 degrees.
	exitAngle := theta0 - k*hitRatio
	exitAngle = clampFloat(exitAngle, math.Pi/6, 5*math.Pi/6)

	speed := incoming.Len()
	return geom.V(speed*math.Cos(exitAngle), -speed*math.Sin(exitAngle))
}

// ResolveWallCollision bounces the ball off the side and top walls,
// repositioning it flush inside the bounds. The bottom edge is left open;
// the engine rules on balls falling out, not the physics.
func ResolveWallCollision(ball *Ball, bounds geom.Rect) {
	b := ball.Bounds()
	vel := ball.Velocity()

	if b.Left() < bounds.Left() {
		ball.SetPosition(geom.V(bounds.Left()+ball.Radius(), ball.Position().Y()))
		vel[0] = -vel.X()
	} else if b.Right() > bounds.Right() {
		ball.SetPosition(geom.V(bounds.Right()-ball.Radius(), ball.Position().Y()))
		vel[0] = -vel.X()
	}

	if b.Top() < bounds.Top() {
		ball.SetPosition(geom.V(ball.Position().X(), bounds.Top()+ball.Radius()))
		vel[1] = -vel.Y()

		// Prevent perfectly vertical bounces by adding a small horizontal
		// component.
		if math.Abs(vel.X()) < 0.1 {
			speed := vel.Len()
			const minAngle = 0.1
			sign := 1.0
			if vel.X() < 0 {
				sign = -1.0
			}
			vel[0] = speed * minAngle * sign
			vel[1] = -math.Sqrt(speed*speed - vel.X()*vel.X())
		}
	}

	ball.SetVelocity(vel)
}

// ResolvePaddleCollision bounces a descending ball off the paddle and
// reports whether a bounce happened. The outgoing direction depends on
// where along the paddle the ball struck; the ball is reseated on top of
// the paddle so it cannot pass through.
func ResolvePaddleCollision(ball *Ball, paddle *Paddle) bool {
	if ball.Velocity().Y() <= 0 {
		return false
	}
	if !geom.Intersects(ball.Bounds(), paddle.Bounds()) {
		return false
	}

	paddleCenter := paddle.Position().X() + paddle.Width()*0.5
	hitRatio := (ball.Position().X() - paddleCenter) / (paddle.Width() * 0.5)
	hitRatio = clampFloat(hitRatio, -1, 1)

	ball.SetVelocity(PaddleReflection(ball.Velocity(), hitRatio))
	ball.SetPosition(geom.V(ball.Position().X(), paddle.Position().Y()-ball.Radius()))

	return true
}

// ResolveBrickCollisions advances the ball through one step of length dt,
// bouncing it off bricks along the way. Up to three contacts are resolved
// per step; each pass takes the earliest contact, breaking near-ties toward
// the brick whose center is closest to the ball. Returns the number of
// bricks destroyed during the step.
//
// In big-ball mode every destroyed brick also deals one hit to intact
// bricks whose centers lie within 2.5 ball radii of the contact point.
func ResolveBrickCollisions(ball *Ball, bricks []Brick, dt float64, bigBall bool) int {
	destroyed := 0
	remaining := 1.0
	velocity := ball.Velocity()

	for iteration := 0; iteration < 3 && remaining > 0; iteration++ {
		earliest := 1.0
		hitDistance := math.MaxFloat64
		hitIndex := len(bricks)
		var hitNormal geom.Vec

		for i := range bricks {
			if bricks[i].Destroyed {
				continue
			}

			box := bricks[i].Bounds
			result := geom.SweptAABB(ball.Bounds(), velocity, box, dt*remaining)
			if !result.Hit {
				continue
			}

			// Distance between centers, for tie-breaking.
			distance := box.Center().Sub(ball.Position()).Len()

			if result.Time < earliest-timeEpsilon {
				earliest = result.Time
				hitDistance = distance
				hitIndex = i
				hitNormal = result.Normal
			} else if math.Abs(result.Time-earliest) <= timeEpsilon && distance < hitDistance {
				earliest = result.Time
				hitDistance = distance
				hitIndex = i
				hitNormal = result.Normal
			}
		}

		if hitIndex == len(bricks) {
			break
		}

		travel := earliest * dt * remaining
		ball.SetPosition(ball.Position().Add(velocity.Mul(travel)))
		velocity = geom.Reflect(velocity, hitNormal)
		// Nudge the ball out along the collision normal to avoid sticking
		// where a brick was removed.
		ball.SetPosition(ball.Position().Add(hitNormal.Mul(ball.Radius() * 0.5)))
		ball.SetVelocity(velocity)

		if bricks[hitIndex].ApplyHit() {
			destroyed++

			if bigBall {
				center := ball.Position()
				blastRadius := ball.Radius() * 2.5

				for i := range bricks {
					if bricks[i].Destroyed {
						continue
					}
					if bricks[i].Bounds.Center().Sub(center).Len() <= blastRadius {
						if bricks[i].ApplyHit() {
							destroyed++
						}
					}
				}
			}
		}

		remaining *= 1 - earliest
	}

	if remaining > 0 {
		ball.SetPosition(ball.Position().Add(velocity.Mul(dt * remaining)))
	}

	return destroyed
}

func clampFloat(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}
