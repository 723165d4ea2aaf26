/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "math"

// epsilon rejects parallel rays and zero-length walls in the intersection
// solve, and marks walls as degenerate in the collision test.
const epsilon = 1e-10

const degToRad = math.Pi / 180

// Wall is a finite segment from (X1,Y1) to (X2,Y2) in world units.
type Wall struct {
	X1, Y1, X2, Y2 float64
}

// Direction returns the unit vector for an angle in degrees, 0° along +x and
// 90° along +y.
func Direction(angle float64) (float64, float64) {
	rad := angle * degToRad
	return math.Cos(rad), math.Sin(rad)
}

// Intersect solves origin + t*dir = P1 + s*(P2-P1). A hit requires t >= 0 and
// s within [0,1]; with a unit direction t is the world distance to the hit.
func (w Wall) Intersect(ox, oy, dx, dy float64) (t, s float64, ok bool) {
	wx := w.X2 - w.X1
	wy := w.Y2 - w.Y1

	den := dx*wy - dy*wx
	if math.Abs(den) < epsilon {
		return 0, 0, false
	}

	px := w.X1 - ox
	py := w.Y1 - oy
	t = (px*wy - py*wx) / den
	s = (px*dy - py*dx) / den
	if t < 0 || s < 0 || s > 1 {
		return t, s, false
	}
	return t, s, true
}

func (w Wall) Orientation() float64 {
	return math.Atan2(w.Y2-w.Y1, w.X2-w.X1)
}

func (w Wall) Length() float64 {
	return math.Hypot(w.X2-w.X1, w.Y2-w.Y1)
}

func (w Wall) Degenerate() bool {
	dx := w.X2 - w.X1
	dy := w.Y2 - w.Y1
	return dx*dx+dy*dy < epsilon
}
