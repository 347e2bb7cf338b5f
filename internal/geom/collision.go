package geom

import "math"

// SweptResult reports the outcome of a swept collision test. Time is the
// normalized fraction of the step at which contact begins; it is 1 when no
// contact was found. Normal points out of the struck surface, against the
// motion on the binding axis.
type SweptResult struct {
	Hit    bool
	Time   float64
	Normal Vec
}

// Intersects reports whether a and b overlap with positive extent on both
// axes. Touching edges do not count.
func Intersects(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// SweptAABB finds the earliest moment within dt at which moving, translated
// by velocity*dt, first penetrates static. The static box is expanded by the
// moving box's extents (Minkowski sum) so the moving box's top-left corner
// can be traced as a point through it. The result's Time is a fraction of
// dt, so callers can advance partway, respond, and sweep the remainder.
//
// A fast object cannot tunnel through a thin target: contact is found from
// the motion interval, not from sampled positions.
func SweptAABB(moving Rect, velocity Vec, static Rect, dt float64) SweptResult {
	miss := SweptResult{Time: 1}
	if dt <= 0 {
		return miss
	}

	expanded := Rect{
		X: static.X - moving.W,
		Y: static.Y - moving.H,
		W: static.W + moving.W,
		H: static.H + moving.H,
	}

	// An axis without motion can never come into contact later in the step:
	// either the corner already lies within the expanded span on that axis
	// or no hit is possible at all.
	if velocity.X() == 0 && (moving.X < expanded.Left() || moving.X > expanded.Right()) {
		return miss
	}
	if velocity.Y() == 0 && (moving.Y < expanded.Top() || moving.Y > expanded.Bottom()) {
		return miss
	}
	if velocity.X() == 0 && velocity.Y() == 0 {
		// Stationary and overlapping on both axes: contact from the very
		// start of the step.
		return SweptResult{Hit: true, Time: 0}
	}

	var entryDist, exitDist Vec
	if velocity.X() > 0 {
		entryDist[0] = expanded.Left() - moving.X
		exitDist[0] = expanded.Right() - moving.X
	} else {
		entryDist[0] = expanded.Right() - moving.X
		exitDist[0] = expanded.Left() - moving.X
	}
	if velocity.Y() > 0 {
		entryDist[1] = expanded.Top() - moving.Y
		exitDist[1] = expanded.Bottom() - moving.Y
	} else {
		entryDist[1] = expanded.Bottom() - moving.Y
		exitDist[1] = expanded.Top() - moving.Y
	}

	entryTime := Vec{math.Inf(-1), math.Inf(-1)}
	exitTime := Vec{math.Inf(1), math.Inf(1)}
	if velocity.X() != 0 {
		entryTime[0] = entryDist.X() / (velocity.X() * dt)
		exitTime[0] = exitDist.X() / (velocity.X() * dt)
	}
	if velocity.Y() != 0 {
		entryTime[1] = entryDist.Y() / (velocity.Y() * dt)
		exitTime[1] = exitDist.Y() / (velocity.Y() * dt)
	}

	entry := math.Max(entryTime.X(), entryTime.Y())
	exit := math.Min(exitTime.X(), exitTime.Y())

	if entry > exit || entry < 0 || entry > 1 {
		return miss
	}

	res := SweptResult{Hit: true, Time: entry}
	if entryTime.X() > entryTime.Y() {
		if velocity.X() < 0 {
			res.Normal = Vec{1, 0}
		} else {
			res.Normal = Vec{-1, 0}
		}
	} else {
		if velocity.Y() < 0 {
			res.Normal = Vec{0, 1}
		} else {
			res.Normal = Vec{0, -1}
		}
	}
	return res
}
