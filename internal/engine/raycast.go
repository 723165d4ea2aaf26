/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

// NoHitDistance is reported when a ray misses every wall.
const NoHitDistance = 1e9

// RayResult is the closest hit of one ray. Wall is an index into the Space's
// walls, -1 when nothing was hit.
type RayResult struct {
	Distance float64
	Hit      bool
	Wall     int
}

func missed() RayResult {
	return RayResult{Distance: NoHitDistance, Wall: -1}
}

// CastRay casts from the viewpoint position at an absolute angle in degrees.
func (s *Space) CastRay(angle float64) RayResult {
	return s.CastRayFrom(s.viewpoint.X, s.viewpoint.Y, angle)
}

// CastRayFrom returns the nearest wall along the ray. Walls at exactly the same
// distance resolve to the one added first; callers should not rely on it.
func (s *Space) CastRayFrom(ox, oy, angle float64) RayResult {
	result := missed()
	dx, dy := Direction(angle)
	for i, wall := range s.walls {
		t, _, ok := wall.Intersect(ox, oy, dx, dy)
		if ok && t < result.Distance {
			result.Distance = t
			result.Hit = true
			result.Wall = i
		}
	}
	return result
}
