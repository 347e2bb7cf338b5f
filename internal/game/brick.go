package game

import "github.com/vovakirdan/brickstorm/internal/geom"

// BrickType tags the brick variants.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickDurable
	BrickIndestructible
)

// NoPickup marks a brick with no assigned pickup: destroying it rolls the
// random spawn chance instead. Values 0-4 name a specific PowerupType.
const NoPickup = -1

// Brick is one obstacle in the field. Bricks are plain value records held
// in the engine's slice; destroying one only flips the flag, the slice is
// rebuilt only on a level change.
type Brick struct {
	Type      BrickType
	Bounds    geom.Rect
	Hits      int
	Destroyed bool
	Pickup    int
}

// BrickFromSymbol maps a layout character to a brick. Blanks and unknown
// symbols produce no brick.
func BrickFromSymbol(ch rune, bounds geom.Rect) (Brick, bool) {
	switch ch {
	case '@':
		return Brick{Type: BrickNormal, Bounds: bounds, Hits: 1, Pickup: NoPickup}, true
	case '#':
		return Brick{Type: BrickDurable, Bounds: bounds, Hits: 2, Pickup: NoPickup}, true
	case '*':
		return Brick{Type: BrickIndestructible, Bounds: bounds, Pickup: NoPickup}, true
	}
	return Brick{}, false
}

// Breakable reports whether hits can ever destroy this brick.
func (b *Brick) Breakable() bool {
	return b.Type != BrickIndestructible
}

// ApplyHit lands one hit and reports whether it destroyed the brick.
// Indestructible bricks absorb hits without any effect.
func (b *Brick) ApplyHit() bool {
	if !b.Breakable() {
		return false
	}
	if b.Hits > 0 {
		b.Hits--
	}
	if b.Hits <= 0 {
		b.Destroyed = true
		return true
	}
	return false
}
