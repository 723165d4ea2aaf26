/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "math"

const defaultArcSegments = 50

// AddArcWall approximates an arc around (cx,cy) with straight walls between
// startAngle and endAngle (degrees).
func AddArcWall(s *Space, cx, cy, radius, startAngle, endAngle float64, segments int) {
	if segments <= 0 {
		segments = defaultArcSegments
	}
	step := (endAngle - startAngle) / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := (startAngle + float64(i)*step) * degToRad
		a2 := (startAngle + float64(i+1)*step) * degToRad
		s.AddWall(Wall{
			X1: cx + radius*math.Cos(a1),
			Y1: cy + radius*math.Sin(a1),
			X2: cx + radius*math.Cos(a2),
			Y2: cy + radius*math.Sin(a2),
		})
	}
}

// DemoScene builds a half circle of radius 8 closed by its diameter. The
// default start at (0,-2) sits just below the diameter, outside the room.
func DemoScene(s *Space) {
	AddArcWall(s, 0, 0, 8, 0, 180, 720)
	s.AddWall(Wall{X1: 8, Y1: 0, X2: -8, Y2: 0})
}
