package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec) bool {
	return math.Abs(a.X()-b.X()) < epsilon && math.Abs(a.Y()-b.Y()) < epsilon
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		expected Vec
	}{
		{"zero vector stays zero", Vec{0, 0}, Vec{0, 0}},
		{"unit vector unchanged", Vec{1, 0}, Vec{1, 0}},
		{"axis vector scaled down", Vec{0, 5}, Vec{0, 1}},
		{"diagonal", Vec{3, 4}, Vec{0.6, 0.8}},
		{"negative components", Vec{-3, -4}, Vec{-0.6, -0.8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Normalize(tc.v)
			if !vecNear(result, tc.expected) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.v, result, tc.expected)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec
		normal   Vec
		expected Vec
	}{
		{"head-on into vertical wall", Vec{5, 0}, Vec{-1, 0}, Vec{-5, 0}},
		{"diagonal off floor", Vec{3, 4}, Vec{0, -1}, Vec{3, -4}},
		{"diagonal off ceiling", Vec{3, -4}, Vec{0, 1}, Vec{3, 4}},
		{"unnormalized normal accepted", Vec{3, 4}, Vec{0, -7}, Vec{3, -4}},
		{"parallel to surface unchanged", Vec{5, 0}, Vec{0, 1}, Vec{5, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Reflect(tc.incident, tc.normal)
			if !vecNear(result, tc.expected) {
				t.Errorf("Reflect(%v, %v) = %v, expected %v", tc.incident, tc.normal, result, tc.expected)
			}
		})
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	incident := Vec{123.4, -56.7}
	result := Reflect(incident, Vec{0.3, 0.9})
	if math.Abs(result.Len()-incident.Len()) > epsilon {
		t.Errorf("reflected speed = %v, expected %v", result.Len(), incident.Len())
	}
}

func TestClampLen(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		max      float64
		expected Vec
	}{
		{"under cap unchanged", Vec{3, 4}, 10, Vec{3, 4}},
		{"at cap unchanged", Vec{3, 4}, 5, Vec{3, 4}},
		{"over cap rescaled", Vec{30, 40}, 5, Vec{3, 4}},
		{"zero vector unchanged", Vec{0, 0}, 5, Vec{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ClampLen(tc.v, tc.max)
			if !vecNear(result, tc.expected) {
				t.Errorf("ClampLen(%v, %v) = %v, expected %v", tc.v, tc.max, result, tc.expected)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	if r.Left() != 5 || r.Right() != 25 {
		t.Errorf("horizontal edges = (%v, %v), expected (5, 25)", r.Left(), r.Right())
	}
	if r.Top() != 10 || r.Bottom() != 25 {
		t.Errorf("vertical edges = (%v, %v), expected (10, 25)", r.Top(), r.Bottom())
	}
	if c := r.Center(); !vecNear(c, Vec{15, 17.5}) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}
