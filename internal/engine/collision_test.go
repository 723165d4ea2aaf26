/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "testing"

func TestDistanceToWall(t *testing.T) {
	tests := []struct {
		name string
		wall Wall
		x, y float64
		want float64
	}{
		{"Perpendicular", Wall{X1: -1, Y1: 0, X2: 1, Y2: 0}, 0, 1, 1},
		{"Past end", Wall{X1: -1, Y1: 0, X2: 1, Y2: 0}, 3, 0, 2},
		{"Before start", Wall{X1: -1, Y1: 0, X2: 1, Y2: 0}, -4, 4, 5},
		{"On wall", Wall{X1: -1, Y1: 0, X2: 1, Y2: 0}, 0.5, 0, 0},
		{"Degenerate", Wall{X1: 2, Y1: 2, X2: 2, Y2: 2}, 2, 3, 1},
		{"Degenerate same point", Wall{X1: 2, Y1: 2, X2: 2, Y2: 2}, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToWall(tt.wall, tt.x, tt.y); !near(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckCollision(t *testing.T) {
	s := newTestSpace(0, -2, 90, 10, 10,
		Wall{X1: 8, Y1: 0, X2: -8, Y2: 0},
		Wall{X1: 20, Y1: 20, X2: 20, Y2: 20},
	)

	tests := []struct {
		name    string
		x, y    float64
		collide bool
	}{
		{"Far away", 0, -5, false},
		{"On wall", 3, 0, true},
		{"Inside clearance", 0, -0.05, true},
		{"Outside clearance", 0, -0.2, false},
		{"Past wall end", 8.2, 0, false},
		{"Near point wall", 20.05, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CheckCollision(tt.x, tt.y); got != tt.collide {
				t.Errorf("Expected collision=%v, got %v", tt.collide, got)
			}
		})
	}
}

func TestCheckCollisionRadius(t *testing.T) {
	s := NewSpace(NewViewpoint(0, 0, 0, 60, 10, 10), WithClearance(1))
	s.AddWall(Wall{X1: -1, Y1: 0, X2: 1, Y2: 0})
	if !s.CheckCollision(0, 0.5) {
		t.Error("Expected collision within a radius of 1")
	}
	if s.CheckCollision(0, 1.5) {
		t.Error("Expected no collision outside a radius of 1")
	}
}

func TestTryMove(t *testing.T) {
	s := newTestSpace(0, -2, 90, 10, 10, Wall{X1: 8, Y1: 0, X2: -8, Y2: 0})

	if !s.TryMove(1.5) {
		t.Fatal("Expected the first move to be accepted")
	}
	if p := s.Pose(); !near(p.X, 0) || !near(p.Y, -0.5) {
		t.Fatalf("Expected (0, -0.5), got (%v, %v)", p.X, p.Y)
	}

	if s.TryMove(0.45) {
		t.Fatal("Expected the move into the wall to be rejected")
	}
	if p := s.Pose(); !near(p.Y, -0.5) {
		t.Errorf("Rejected move changed position to %v", p.Y)
	}

	if !s.TryMove(-1) {
		t.Error("Expected backing away to be accepted")
	}
}

func TestTryMoveTunnels(t *testing.T) {
	// only the destination is tested
	s := newTestSpace(0, -2, 90, 10, 10, Wall{X1: 8, Y1: 0, X2: -8, Y2: 0})
	if !s.TryMove(4) {
		t.Fatal("Expected a long step to jump the wall")
	}
	if p := s.Pose(); !near(p.Y, 2) {
		t.Errorf("Expected y=2, got %v", p.Y)
	}
}

func TestTryStrafe(t *testing.T) {
	s := newTestSpace(0, -2, 0, 10, 10, Wall{X1: 8, Y1: 0, X2: -8, Y2: 0})

	if s.TryStrafe(1.95) {
		t.Error("Expected strafing into the wall to be rejected")
	}
	if !s.TryStrafe(-1) {
		t.Fatal("Expected strafing away to be accepted")
	}
	if p := s.Pose(); !near(p.X, 0) || !near(p.Y, -3) {
		t.Errorf("Expected (0, -3), got (%v, %v)", p.X, p.Y)
	}
	if s.Pose().Towards != 0 {
		t.Errorf("Strafing changed heading to %v", s.Pose().Towards)
	}
}
