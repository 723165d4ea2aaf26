/*
 * Copyright (C) 2023 by Jason Figge
 */

package sdlview

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"ray-casting/internal"
)

// Canvas presents a Controller's pixel buffer through a streaming texture.
type Canvas struct {
	controller *internal.Controller
	window     *sdl.Window
	renderer   *sdl.Renderer
	texture    *sdl.Texture
	running    bool
	captured   bool
	mouseDX    int32
	frameDelay uint32
}

// ErrorTrap panics on SDL failures inside the frame loop, where there is no
// caller left to hand the error to.
func ErrorTrap(err error) {
	if err != nil {
		panic(err)
	}
}

// Open creates the window and runs the interaction loop until the window is
// closed, Escape or Q is pressed.
func Open(title string, controller *internal.Controller, fps int) error {
	c := &Canvas{controller: controller}
	if fps > 0 {
		c.frameDelay = uint32(1000 / fps)
	}
	if err := c.init(title); err != nil {
		c.destroy()
		return err
	}
	defer c.destroy()

	c.capture(true)
	c.running = true
	for c.running {
		c.poll()
		c.OnUpdate()
		c.OnDraw()
		sdl.Delay(c.frameDelay)
	}
	c.capture(false)
	return nil
}

func (c *Canvas) init(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	space := c.controller.Space()
	width, height := int32(space.Width()), int32(space.Height())

	var err error
	c.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	c.renderer, err = sdl.CreateRenderer(c.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	c.texture, err = c.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	return nil
}

func (c *Canvas) destroy() {
	if c.texture != nil {
		_ = c.texture.Destroy()
	}
	if c.renderer != nil {
		_ = c.renderer.Destroy()
	}
	if c.window != nil {
		_ = c.window.Destroy()
	}
	sdl.Quit()
}

func (c *Canvas) poll() {
	c.mouseDX = 0
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		c.Events(event)
	}
}

func (c *Canvas) Events(event sdl.Event) bool {
	processed := false
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.running = false
		processed = true
	case *sdl.MouseMotionEvent:
		if c.captured {
			c.mouseDX += e.XRel
			processed = true
		}
	case *sdl.KeyboardEvent:
		processed = c.keyboardEvent(e)
	}
	return processed
}

func (c *Canvas) keyboardEvent(event *sdl.KeyboardEvent) bool {
	if event.State != sdl.PRESSED || event.Repeat != 0 {
		return false
	}
	switch event.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		c.running = false
	case sdl.SCANCODE_C:
		c.controller.ToggleCollision()
	default:
		return false
	}
	return true
}

func (c *Canvas) OnUpdate() {
	codes := sdl.GetKeyboardState()

	// Alt releases the mouse while held
	alt := codes[sdl.SCANCODE_LALT] == 1 || codes[sdl.SCANCODE_RALT] == 1
	c.capture(!alt)

	c.controller.OnUpdate(internal.Input{
		Forward:   codes[sdl.SCANCODE_W] == 1 || codes[sdl.SCANCODE_UP] == 1,
		Backward:  codes[sdl.SCANCODE_S] == 1 || codes[sdl.SCANCODE_DOWN] == 1,
		Left:      codes[sdl.SCANCODE_A] == 1,
		Right:     codes[sdl.SCANCODE_D] == 1,
		TurnLeft:  codes[sdl.SCANCODE_LEFT] == 1,
		TurnRight: codes[sdl.SCANCODE_RIGHT] == 1,
		MouseDX:   float64(c.mouseDX),
	})
}

func (c *Canvas) OnDraw() {
	space := c.controller.Space()
	pixels := space.Render()
	if len(pixels) == 0 {
		return
	}
	ErrorTrap(c.texture.Update(nil, unsafe.Pointer(&pixels[0]), space.Width()*4))
	ErrorTrap(c.renderer.Clear())
	ErrorTrap(c.renderer.Copy(c.texture, nil, nil))
	c.renderer.Present()
}

func (c *Canvas) capture(on bool) {
	if on == c.captured {
		return
	}
	c.captured = on
	sdl.SetRelativeMouseMode(on)
	if on {
		_, _ = sdl.ShowCursor(sdl.DISABLE)
	} else {
		_, _ = sdl.ShowCursor(sdl.ENABLE)
	}
}
