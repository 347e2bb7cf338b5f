package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// Paddle is the player-controlled bat. Its position is the top-left corner.
type Paddle struct {
	pos    geom.Vec
	width  float64
	height float64
	speed  float64
}

// PaddleState is the plain serializable form of a Paddle. Speed is a
// configuration value and not part of the saved state.
type PaddleState struct {
	Pos    geom.Vec `yaml:"pos"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
}

// NewPaddle returns a paddle of the given size with the given horizontal
// speed in pixels per second.
func NewPaddle(width, height, speed float64) Paddle {
	return Paddle{width: width, height: height, speed: speed}
}

func (p *Paddle) Position() geom.Vec { return p.pos }
func (p *Paddle) Width() float64     { return p.width }
func (p *Paddle) Height() float64    { return p.height }
func (p *Paddle) Speed() float64     { return p.speed }

func (p *Paddle) SetPosition(pos geom.Vec) { p.pos = pos }

func (p *Paddle) SetSize(width, height float64) {
	p.width = width
	p.height = height
}

// Bounds returns the paddle's box.
func (p *Paddle) Bounds() geom.Rect {
	return geom.Rect{X: p.pos.X(), Y: p.pos.Y(), W: p.width, H: p.height}
}

// MoveLeft shifts the paddle left by speed*dt, stopping at minX.
func (p *Paddle) MoveLeft(dt, minX float64) {
	x := p.pos.X() - p.speed*dt
	if x < minX {
		x = minX
	}
	p.pos[0] = x
}

// MoveRight shifts the paddle right by speed*dt, keeping its right edge at
// or inside maxX.
func (p *Paddle) MoveRight(dt, maxX float64) {
	x := p.pos.X() + p.speed*dt
	if limit := maxX - p.width; x > limit {
		x = limit
	}
	p.pos[0] = x
}

// State captures the paddle as plain data.
func (p *Paddle) State() PaddleState {
	return PaddleState{Pos: p.pos, Width: p.width, Height: p.height}
}

// Restore overwrites position and size from previously captured state.
func (p *Paddle) Restore(s PaddleState) {
	p.pos = s.Pos
	p.width = s.Width
	p.height = s.Height
}
