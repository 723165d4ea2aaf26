/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"flag"
	"fmt"
	"log"

	"ray-casting/internal"
	"ray-casting/internal/audio"
	"ray-casting/internal/ebitenview"
	"ray-casting/internal/engine"
	"ray-casting/internal/sdlview"
	"ray-casting/internal/termview"
)

const (
	title        = "Easy 3D Engine"
	screenWidth  = 800
	screenHeight = 600
	startX       = 0.0
	startY       = -2.0
	startTowards = 0.0
	viewAngle    = 60.0
	maxFPS       = 60
)

var (
	backendFlag     = flag.String("backend", "sdl", "presentation backend: sdl, ebiten or term")
	widthFlag       = flag.Int("width", screenWidth, "window width in pixels")
	heightFlag      = flag.Int("height", screenHeight, "window height in pixels")
	fovFlag         = flag.Float64("fov", viewAngle, "horizontal field of view (degrees)")
	xFlag           = flag.Float64("x", startX, "start position x")
	yFlag           = flag.Float64("y", startY, "start position y")
	towardsFlag     = flag.Float64("towards", startTowards, "start heading (degrees)")
	moveSpeedFlag   = flag.Float64("move-speed", internal.DefaultMoveSpeed, "distance moved per frame")
	rotateSpeedFlag = flag.Float64("rotate-speed", internal.DefaultRotateSpeed, "degrees turned per frame with the arrow keys")
	mouseSensFlag   = flag.Float64("mouse-sensitivity", internal.DefaultMouseSensitivity, "degrees turned per pixel of mouse motion")
	fpsFlag         = flag.Int("fps", maxFPS, "frame rate cap")
	collisionFlag   = flag.Bool("collision", true, "stop at walls")
	audioFlag       = flag.Bool("audio", false, "buzz when walking into a wall")
)

func main() {
	flag.Parse()
	if err := validate(); err != nil {
		log.Fatal(err)
	}

	viewpoint := engine.NewViewpoint(*xFlag, *yFlag, *towardsFlag, *fovFlag, *widthFlag, *heightFlag)
	space := engine.NewSpace(viewpoint)
	engine.DemoScene(space)

	controller := internal.NewController(space, internal.Settings{
		MoveSpeed:        *moveSpeedFlag,
		RotateSpeed:      *rotateSpeedFlag,
		MouseSensitivity: *mouseSensFlag,
		Collision:        *collisionFlag,
	})

	if *audioFlag {
		bumper := audio.NewBumper()
		if err := bumper.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer bumper.Close()
			controller.SetBumpListener(bumper)
		}
	}

	var err error
	switch *backendFlag {
	case "sdl":
		err = sdlview.Open(title, controller, *fpsFlag)
	case "ebiten":
		err = ebitenview.Run(title, controller, *fpsFlag)
	case "term":
		err = termview.Run(controller, *fpsFlag)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Game over")
}

func validate() error {
	switch *backendFlag {
	case "sdl", "ebiten", "term":
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return fmt.Errorf("invalid size %dx%d", *widthFlag, *heightFlag)
	}
	if *fovFlag <= 0 || *fovFlag >= 180 {
		return fmt.Errorf("field of view must be between 0 and 180 degrees, got %g", *fovFlag)
	}
	return nil
}
