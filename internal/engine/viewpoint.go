/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "math"

// Viewpoint is the camera. Towards is the heading in degrees and ViewAngle the
// full horizontal field of view, also in degrees.
type Viewpoint struct {
	X, Y      float64
	Towards   float64
	ViewAngle float64
	Width     int
	Height    int
}

// Pose is the part of a Viewpoint that changes while moving around.
type Pose struct {
	X, Y      float64
	Towards   float64
	ViewAngle float64
}

func NewViewpoint(x, y, towards, viewAngle float64, width, height int) Viewpoint {
	return Viewpoint{
		X:         x,
		Y:         y,
		Towards:   NormalizeAngle(towards),
		ViewAngle: viewAngle,
		Width:     width,
		Height:    height,
	}
}

// NormalizeAngle wraps degrees into [0,360).
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	// -1e-14 + 360 rounds to 360
	if angle >= 360 {
		angle = 0
	}
	return angle
}

func (v *Viewpoint) Move(distance float64) {
	dx, dy := Direction(v.Towards)
	v.X += distance * dx
	v.Y += distance * dy
}

// Strafe moves sideways, perpendicular to the heading. Positive distances go
// towards heading+90°.
func (v *Viewpoint) Strafe(distance float64) {
	dx, dy := Direction(v.Towards + 90)
	v.X += distance * dx
	v.Y += distance * dy
}

func (v *Viewpoint) Rotate(delta float64) {
	v.Towards = NormalizeAngle(v.Towards + delta)
}

func (v *Viewpoint) MoveTo(x, y float64) {
	v.X = x
	v.Y = y
}

func (v *Viewpoint) Pose() Pose {
	return Pose{X: v.X, Y: v.Y, Towards: v.Towards, ViewAngle: v.ViewAngle}
}

func (v *Viewpoint) SetPose(p Pose) {
	v.X = p.X
	v.Y = p.Y
	v.Towards = NormalizeAngle(p.Towards)
	v.ViewAngle = p.ViewAngle
}

// HalfFov returns half the field of view in degrees.
func (v *Viewpoint) HalfFov() float64 {
	return v.ViewAngle / 2
}
