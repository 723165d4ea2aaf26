/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "math"

// DistanceToWall measures from (x,y) to the closest point of the finite
// segment. A zero-length wall is treated as a point.
func DistanceToWall(w Wall, x, y float64) float64 {
	if w.Degenerate() {
		return math.Hypot(x-w.X1, y-w.Y1)
	}
	dx := w.X2 - w.X1
	dy := w.Y2 - w.Y1
	t := clamp(((x-w.X1)*dx+(y-w.Y1)*dy)/(dx*dx+dy*dy), 0, 1)
	return math.Hypot(x-(w.X1+t*dx), y-(w.Y1+t*dy))
}

// CheckCollision reports whether (x,y) is closer than the clearance radius to
// any wall.
func (s *Space) CheckCollision(x, y float64) bool {
	for _, wall := range s.walls {
		if DistanceToWall(wall, x, y) < s.opts.Clearance {
			return true
		}
	}
	return false
}

// TryMove moves along the heading unless the destination collides. Only the
// destination is tested, so fast moves can pass through thin walls.
func (s *Space) TryMove(distance float64) bool {
	return s.tryStep(s.viewpoint.Towards, distance)
}

func (s *Space) TryStrafe(distance float64) bool {
	return s.tryStep(s.viewpoint.Towards+90, distance)
}

func (s *Space) tryStep(angle, distance float64) bool {
	dx, dy := Direction(angle)
	x := s.viewpoint.X + distance*dx
	y := s.viewpoint.Y + distance*dy
	if s.CheckCollision(x, y) {
		return false
	}
	s.viewpoint.MoveTo(x, y)
	return true
}
