/*
 * Copyright (C) 2023 by Jason Figge
 */

package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ray-casting/internal"
)

// Game adapts a Controller to ebiten's update/draw loop.
type Game struct {
	controller *internal.Controller
	pixels     []byte
	captured   bool
	lastX      int
	primed     bool
}

func NewGame(controller *internal.Controller) *Game {
	space := controller.Space()
	return &Game{
		controller: controller,
		pixels:     make([]byte, space.Width()*space.Height()*4),
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(title string, controller *internal.Controller, fps int) error {
	space := controller.Space()
	ebiten.SetWindowSize(space.Width(), space.Height())
	ebiten.SetWindowTitle(title)
	if fps > 0 {
		ebiten.SetTPS(fps)
	}

	g := NewGame(controller)
	g.capture(true)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.controller.ToggleCollision()
	}

	// Alt releases the mouse while held
	alt := ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	g.capture(!alt)

	g.controller.Step(g.input())
	g.controller.Space().CopyRGBA(g.pixels)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pixels)
}

func (g *Game) Layout(_, _ int) (int, int) {
	space := g.controller.Space()
	return space.Width(), space.Height()
}

func (g *Game) input() internal.Input {
	in := internal.Input{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	x, _ := ebiten.CursorPosition()
	if g.captured && g.primed {
		in.MouseDX = float64(x - g.lastX)
	}
	g.lastX = x
	g.primed = g.captured
	return in
}

func (g *Game) capture(on bool) {
	if on == g.captured {
		return
	}
	g.captured = on
	g.primed = false
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
