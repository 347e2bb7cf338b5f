package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// PowerupType enumerates the five pickup effects. The numeric values are
// stable; snapshots store them as integers.
type PowerupType int

const (
	PowerExpandPaddle PowerupType = iota
	PowerExtraLife
	PowerSpeedBoost
	PowerPointMultiplier
	PowerBigBall
)

func (t PowerupType) String() string {
	switch t {
	case PowerExpandPaddle:
		return "expand"
	case PowerExtraLife:
		return "life"
	case PowerSpeedBoost:
		return "speed"
	case PowerPointMultiplier:
		return "points"
	case PowerBigBall:
		return "bigball"
	}
	return "unknown"
}

// Powerup is a pickup falling toward the paddle. Pos is its center.
type Powerup struct {
	Type PowerupType
	Pos  geom.Vec
	Vel  geom.Vec
	Size float64
}

// Bounds returns the pickup's box, centered on its position.
func (p Powerup) Bounds() geom.Rect {
	return geom.Rect{
		X: p.Pos.X() - p.Size*0.5,
		Y: p.Pos.Y() - p.Size*0.5,
		W: p.Size,
		H: p.Size,
	}
}
