package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickstorm/internal/geom"
)

const testEps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= testEps
}

func vecNear(a, b geom.Vec) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y())
}

func TestPaddleReflection(t *testing.T) {
	tests := []struct {
		name     string
		incoming geom.Vec
		ratio    float64
		want     geom.Vec
	}{
		{"center goes straight up", geom.V(0, 200), 0, geom.V(0, -200)},
		{"right edge exits at 30 degrees", geom.V(0, 200), 1, geom.V(200 * math.Cos(math.Pi/6), -200 * math.Sin(math.Pi/6))},
		{"left edge exits at 150 degrees", geom.V(0, 200), -1, geom.V(200 * math.Cos(5*math.Pi/6), -200 * math.Sin(5*math.Pi/6))},
		{"half right", geom.V(0, 200), 0.5, geom.V(200 * math.Cos(math.Pi/3), -200 * math.Sin(math.Pi/3))},
		{"ratio beyond right clamps to 30 degrees", geom.V(0, 200), 1.5, geom.V(200 * math.Cos(math.Pi/6), -200 * math.Sin(math.Pi/6))},
		{"ratio beyond left clamps to 150 degrees", geom.V(0, 200), -1.5, geom.V(200 * math.Cos(5*math.Pi/6), -200 * math.Sin(5*math.Pi/6))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaddleReflection(tt.incoming, tt.ratio)
			if !vecNear(got, tt.want) {
				t.Errorf("PaddleReflection(%v, %v) = %v, expected %v", tt.incoming, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestPaddleReflectionPreservesSpeed(t *testing.T) {
	incoming := geom.V(120, -50) // speed 130
	for _, ratio := range []float64{-1, -0.5, 0, 0.5, 1} {
		out := PaddleReflection(incoming, ratio)
		if !near(out.Len(), 130) {
			t.Errorf("ratio %v: speed = %v, expected 130", ratio, out.Len())
		}
	}
}

func TestResolveWallCollisionSides(t *testing.T) {
	bounds := geom.Rect{W: 640, H: 480}

	tests := []struct {
		name    string
		pos     geom.Vec
		vel     geom.Vec
		wantPos geom.Vec
		wantVel geom.Vec
	}{
		{"left wall", geom.V(5, 100), geom.V(-120, 30), geom.V(8, 100), geom.V(120, 30)},
		{"right wall", geom.V(638, 100), geom.V(120, 30), geom.V(632, 100), geom.V(-120, 30)},
		{"top wall", geom.V(100, 5), geom.V(80, -150), geom.V(100, 8), geom.V(80, 150)},
		{"corner bounces both axes", geom.V(5, 5), geom.V(-100, -50), geom.V(8, 8), geom.V(100, 50)},
		{"interior untouched", geom.V(320, 240), geom.V(50, 50), geom.V(320, 240), geom.V(50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(8)
			ball.SetPosition(tt.pos)
			ball.SetVelocity(tt.vel)

			ResolveWallCollision(&ball, bounds)

			if !vecNear(ball.Position(), tt.wantPos) {
				t.Errorf("position = %v, expected %v", ball.Position(), tt.wantPos)
			}
			if !vecNear(ball.Velocity(), tt.wantVel) {
				t.Errorf("velocity = %v, expected %v", ball.Velocity(), tt.wantVel)
			}
		})
	}
}

func TestResolveWallCollisionTopSteersVerticalBounce(t *testing.T) {
	bounds := geom.Rect{W: 640, H: 480}
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 5))
	ball.SetVelocity(geom.V(0, -200))

	ResolveWallCollision(&ball, bounds)

	vel := ball.Velocity()
	if math.Abs(vel.X()) < 0.1 {
		t.Errorf("velocity X = %v, expected a horizontal component to be injected", vel.X())
	}
	if !near(vel.X(), 20) {
		t.Errorf("velocity X = %v, expected 20", vel.X())
	}
	if !near(vel.Len(), 200) {
		t.Errorf("speed = %v, expected 200 to be preserved", vel.Len())
	}
}

func TestResolvePaddleCollisionIgnoresAscent(t *testing.T) {
	paddle := NewPaddle(110, 20, 280)
	paddle.SetPosition(geom.V(265, 440))

	for _, vel := range []geom.Vec{geom.V(0, -100), geom.V(100, 0)} {
		ball := NewBall(8)
		ball.SetPosition(geom.V(320, 445))
		ball.SetVelocity(vel)

		if ResolvePaddleCollision(&ball, &paddle) {
			t.Errorf("vel %v: collision reported for a ball not descending", vel)
		}
		if !vecNear(ball.Velocity(), vel) {
			t.Errorf("vel %v: velocity changed to %v", vel, ball.Velocity())
		}
	}
}

func TestResolvePaddleCollisionCenter(t *testing.T) {
	paddle := NewPaddle(110, 20, 280)
	paddle.SetPosition(geom.V(265, 440))

	ball := NewBall(8)
	ball.SetPosition(geom.V(320, 445))
	ball.SetVelocity(geom.V(30, 200))

	if !ResolvePaddleCollision(&ball, &paddle) {
		t.Fatal("expected a paddle hit")
	}

	vel := ball.Velocity()
	if !near(vel.X(), 0) {
		t.Errorf("velocity X = %v, expected 0 for a center hit", vel.X())
	}
	if !near(vel.Y(), -math.Sqrt(40900)) {
		t.Errorf("velocity Y = %v, expected %v", vel.Y(), -math.Sqrt(40900))
	}
	if !near(ball.Position().Y(), 432) {
		t.Errorf("position Y = %v, expected 432 (reseated atop the paddle)", ball.Position().Y())
	}
}

func TestResolvePaddleCollisionSteersByHitPosition(t *testing.T) {
	tests := []struct {
		name   string
		ballX  float64
		wantVX func(float64) bool
	}{
		{"left side sends ball left", 280, func(vx float64) bool { return vx < 0 }},
		{"right side sends ball right", 360, func(vx float64) bool { return vx > 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := NewPaddle(110, 20, 280)
			paddle.SetPosition(geom.V(265, 440))

			ball := NewBall(8)
			ball.SetPosition(geom.V(tt.ballX, 445))
			ball.SetVelocity(geom.V(0, 200))

			if !ResolvePaddleCollision(&ball, &paddle) {
				t.Fatal("expected a paddle hit")
			}
			if vx := ball.Velocity().X(); !tt.wantVX(vx) {
				t.Errorf("velocity X = %v, wrong direction for hit at x=%v", vx, tt.ballX)
			}
			if vy := ball.Velocity().Y(); vy >= 0 {
				t.Errorf("velocity Y = %v, expected upward", vy)
			}
		})
	}
}

func TestResolvePaddleCollisionClampsHitRatio(t *testing.T) {
	paddle := NewPaddle(110, 20, 280)
	paddle.SetPosition(geom.V(265, 440))

	// Ball center past the left edge but box still overlapping.
	ball := NewBall(8)
	ball.SetPosition(geom.V(262, 445))
	ball.SetVelocity(geom.V(0, 200))

	if !ResolvePaddleCollision(&ball, &paddle) {
		t.Fatal("expected a paddle hit")
	}
	want := geom.V(200*math.Cos(5*math.Pi/6), -200*math.Sin(5*math.Pi/6))
	if !vecNear(ball.Velocity(), want) {
		t.Errorf("velocity = %v, expected %v (clamped to the 150 degree exit)", ball.Velocity(), want)
	}
}

func TestResolveBrickCollisionsHeadOn(t *testing.T) {
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 300))
	ball.SetVelocity(geom.V(0, -400))

	brick, _ := BrickFromSymbol('@', geom.Rect{X: 60, Y: 200, W: 80, H: 28})
	bricks := []Brick{brick}

	destroyed := ResolveBrickCollisions(&ball, bricks, 0.2, false)

	if destroyed != 1 {
		t.Fatalf("destroyed = %d, expected 1", destroyed)
	}
	if !bricks[0].Destroyed {
		t.Error("brick not flagged destroyed")
	}
	if !vecNear(ball.Velocity(), geom.V(0, 400)) {
		t.Errorf("velocity = %v, expected %v", ball.Velocity(), geom.V(0, 400))
	}
	// Impact at 80% of the step, then the leftover travel moves the ball
	// back down past its own nudge.
	if !vecNear(ball.Position(), geom.V(100, 256)) {
		t.Errorf("position = %v, expected %v", ball.Position(), geom.V(100, 256))
	}
}

func TestResolveBrickCollisionsTieBreaksByDistance(t *testing.T) {
	brickA, _ := BrickFromSymbol('@', geom.Rect{X: 30, Y: 40, W: 20, H: 20})
	brickB, _ := BrickFromSymbol('@', geom.Rect{X: 30, Y: 55, W: 20, H: 20})

	// Both bricks produce the same entry time; the one whose center is
	// closer to the ball must win, whatever the slice order.
	for name, bricks := range map[string][]Brick{
		"closer first": {brickA, brickB},
		"closer last":  {brickB, brickA},
	} {
		ball := NewBall(8)
		ball.SetPosition(geom.V(0, 50))
		ball.SetVelocity(geom.V(400, 0))

		destroyed := ResolveBrickCollisions(&ball, bricks, 0.1, false)

		if destroyed != 1 {
			t.Fatalf("%s: destroyed = %d, expected 1", name, destroyed)
		}
		for i := range bricks {
			isA := bricks[i].Bounds.Y == 40
			if isA && !bricks[i].Destroyed {
				t.Errorf("%s: closer brick survived", name)
			}
			if !isA && bricks[i].Destroyed {
				t.Errorf("%s: farther brick was destroyed", name)
			}
		}
	}
}

func TestResolveBrickCollisionsAreaEffect(t *testing.T) {
	build := func() []Brick {
		primary, _ := BrickFromSymbol('@', geom.Rect{X: 60, Y: 240, W: 80, H: 28})
		neighbor, _ := BrickFromSymbol('@', geom.Rect{X: 110, Y: 270, W: 30, H: 28})
		far, _ := BrickFromSymbol('@', geom.Rect{X: 400, Y: 100, W: 40, H: 28})
		return []Brick{primary, neighbor, far}
	}

	newBall := func() Ball {
		ball := NewBall(16)
		ball.SetPosition(geom.V(100, 300))
		ball.SetVelocity(geom.V(0, -400))
		return ball
	}

	t.Run("big ball chains to nearby bricks", func(t *testing.T) {
		ball := newBall()
		bricks := build()

		destroyed := ResolveBrickCollisions(&ball, bricks, 0.2, true)

		if destroyed != 2 {
			t.Fatalf("destroyed = %d, expected 2", destroyed)
		}
		if !bricks[0].Destroyed || !bricks[1].Destroyed {
			t.Error("primary and neighbor bricks should both be destroyed")
		}
		if bricks[2].Destroyed {
			t.Error("brick outside the blast radius was destroyed")
		}
	})

	t.Run("normal ball hits only the struck brick", func(t *testing.T) {
		ball := newBall()
		bricks := build()

		destroyed := ResolveBrickCollisions(&ball, bricks, 0.2, false)

		if destroyed != 1 {
			t.Fatalf("destroyed = %d, expected 1", destroyed)
		}
		if bricks[1].Destroyed {
			t.Error("neighbor brick destroyed without the area effect")
		}
	})
}

func TestResolveBrickCollisionsCatchesTunneling(t *testing.T) {
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 300))
	ball.SetVelocity(geom.V(0, -4000))

	thin, _ := BrickFromSymbol('@', geom.Rect{X: 0, Y: 100, W: 200, H: 4})
	bricks := []Brick{thin}

	// One step carries the ball 400px, far past the 4px brick.
	destroyed := ResolveBrickCollisions(&ball, bricks, 0.1, false)

	if destroyed != 1 {
		t.Errorf("destroyed = %d, expected the fast ball to hit the thin brick", destroyed)
	}
}

func TestResolveBrickCollisionsSkipsDestroyed(t *testing.T) {
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 300))
	ball.SetVelocity(geom.V(0, -400))

	brick, _ := BrickFromSymbol('@', geom.Rect{X: 60, Y: 200, W: 80, H: 28})
	brick.Destroyed = true
	bricks := []Brick{brick}

	destroyed := ResolveBrickCollisions(&ball, bricks, 0.2, false)

	if destroyed != 0 {
		t.Errorf("destroyed = %d, expected 0", destroyed)
	}
	if !vecNear(ball.Position(), geom.V(100, 220)) {
		t.Errorf("position = %v, expected the ball to pass straight through to %v", ball.Position(), geom.V(100, 220))
	}
}

func TestResolveBrickCollisionsIndestructibleBounces(t *testing.T) {
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 300))
	ball.SetVelocity(geom.V(0, -400))

	brick, _ := BrickFromSymbol('*', geom.Rect{X: 60, Y: 200, W: 80, H: 28})
	bricks := []Brick{brick}

	destroyed := ResolveBrickCollisions(&ball, bricks, 0.2, false)

	if destroyed != 0 {
		t.Errorf("destroyed = %d, expected 0", destroyed)
	}
	if bricks[0].Destroyed {
		t.Error("indestructible brick flagged destroyed")
	}
	if !vecNear(ball.Velocity(), geom.V(0, 400)) {
		t.Errorf("velocity = %v, expected the ball to bounce to %v", ball.Velocity(), geom.V(0, 400))
	}
}

func TestResolveBrickCollisionsNoBricksAdvances(t *testing.T) {
	ball := NewBall(8)
	ball.SetPosition(geom.V(100, 300))
	ball.SetVelocity(geom.V(300, -100))

	destroyed := ResolveBrickCollisions(&ball, nil, 0.05, false)

	if destroyed != 0 {
		t.Errorf("destroyed = %d, expected 0", destroyed)
	}
	if !vecNear(ball.Position(), geom.V(115, 295)) {
		t.Errorf("position = %v, expected %v", ball.Position(), geom.V(115, 295))
	}
}
