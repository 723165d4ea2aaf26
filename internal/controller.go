/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"ray-casting/internal/engine"
)

const (
	DefaultMoveSpeed        = 0.1
	DefaultRotateSpeed      = 3.0
	DefaultMouseSensitivity = 0.2

	diagonalFactor = 0.70710678118
)

// Input is one frame of device state, already translated by a backend.
type Input struct {
	Forward   bool
	Backward  bool
	Left      bool
	Right     bool
	TurnLeft  bool
	TurnRight bool
	MouseDX   float64
}

type Settings struct {
	MoveSpeed        float64
	RotateSpeed      float64
	MouseSensitivity float64
	Collision        bool
}

func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        DefaultMoveSpeed,
		RotateSpeed:      DefaultRotateSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Collision:        true,
	}
}

// BumpListener hears about moves rejected by the collision check.
type BumpListener interface {
	Bump()
}

type Controller struct {
	space    *engine.Space
	settings Settings
	bumper   BumpListener
	blocked  bool
}

func NewController(space *engine.Space, settings Settings) *Controller {
	return &Controller{
		space:    space,
		settings: settings,
	}
}

func (c *Controller) Space() *engine.Space {
	return c.space
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) SetBumpListener(listener BumpListener) {
	c.bumper = listener
}

func (c *Controller) ToggleCollision() bool {
	c.settings.Collision = !c.settings.Collision
	return c.settings.Collision
}

// Step applies one frame of input to the viewpoint, then renders. The
// viewpoint is never touched once the render sweep has started.
func (c *Controller) Step(in Input) []uint32 {
	c.OnUpdate(in)
	return c.space.Render()
}

func (c *Controller) OnUpdate(in Input) {
	vp := c.space.Viewpoint()
	if in.MouseDX != 0 {
		vp.Rotate(-in.MouseDX * c.settings.MouseSensitivity)
	}

	speed := c.settings.MoveSpeed
	if (in.Forward || in.Backward) && (in.Left || in.Right) {
		speed *= diagonalFactor
	}

	rejected := false
	if in.Forward {
		rejected = !c.forward(speed) || rejected
	}
	if in.Backward {
		rejected = !c.forward(-speed) || rejected
	}
	if in.Left {
		rejected = !c.strafe(-speed) || rejected
	}
	if in.Right {
		rejected = !c.strafe(speed) || rejected
	}

	if in.TurnLeft {
		vp.Rotate(-c.settings.RotateSpeed)
	}
	if in.TurnRight {
		vp.Rotate(c.settings.RotateSpeed)
	}

	if rejected && !c.blocked && c.bumper != nil {
		c.bumper.Bump()
	}
	c.blocked = rejected
}

func (c *Controller) forward(distance float64) bool {
	if !c.settings.Collision {
		c.space.Viewpoint().Move(distance)
		return true
	}
	return c.space.TryMove(distance)
}

func (c *Controller) strafe(distance float64) bool {
	if !c.settings.Collision {
		c.space.Viewpoint().Strafe(distance)
		return true
	}
	return c.space.TryStrafe(distance)
}
