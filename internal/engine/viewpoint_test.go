/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "testing"

func TestRotateWraps(t *testing.T) {
	tests := []struct {
		name    string
		towards float64
		delta   float64
		want    float64
	}{
		{"Past 360", 350, 20, 10},
		{"Below 0", 5, -20, 345},
		{"Exactly 360", 0, 360, 0},
		{"Exactly -360", 0, -360, 0},
		{"Several turns", 10, 725, 15},
		{"Several turns back", 10, -725, 5},
		{"No change", 123, 0, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewpoint(0, 0, tt.towards, 60, 10, 10)
			vp.Rotate(tt.delta)
			if !near(vp.Towards, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, vp.Towards)
			}
			if vp.Towards < 0 || vp.Towards >= 360 {
				t.Errorf("Heading %v outside [0,360)", vp.Towards)
			}
		})
	}
}

func TestNewViewpointNormalizes(t *testing.T) {
	vp := NewViewpoint(1, 2, -90, 60, 800, 600)
	if !near(vp.Towards, 270) {
		t.Errorf("Expected 270, got %v", vp.Towards)
	}
	if vp.HalfFov() != 30 {
		t.Errorf("Expected half fov 30, got %v", vp.HalfFov())
	}
}

func TestMoveAndStrafe(t *testing.T) {
	tests := []struct {
		name    string
		towards float64
		move    float64
		strafe  float64
		x, y    float64
	}{
		{"Forward along x", 0, 2, 0, 2, 0},
		{"Forward along y", 90, 1.5, 0, 0, 1.5},
		{"Backward", 0, -1, 0, -1, 0},
		{"Strafe right", 0, 0, 1, 0, 1},
		{"Strafe left", 0, 0, -1, 0, -1},
		{"Strafe facing y", 90, 0, 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewpoint(0, 0, tt.towards, 60, 10, 10)
			vp.Move(tt.move)
			vp.Strafe(tt.strafe)
			if !near(vp.X, tt.x) || !near(vp.Y, tt.y) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.x, tt.y, vp.X, vp.Y)
			}
			if vp.Towards != NormalizeAngle(tt.towards) {
				t.Errorf("Heading changed to %v", vp.Towards)
			}
		})
	}
}

func TestPoseRoundTrip(t *testing.T) {
	vp := NewViewpoint(3, -4, 45, 70, 10, 10)
	saved := vp.Pose()

	vp.Move(5)
	vp.Rotate(90)
	vp.SetPose(saved)

	if vp.Pose() != saved {
		t.Errorf("Expected %+v, got %+v", saved, vp.Pose())
	}
}
