/*
 * Copyright (C) 2023 by Jason Figge
 */

package termview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ray-casting/internal"
	"ray-casting/internal/engine"
)

// upper half block: foreground is the top pixel, background the bottom one
const halfBlock = '▀'

type Terminal struct {
	screen     tcell.Screen
	controller *internal.Controller
	input      internal.Input
	running    bool
}

// Run takes over the terminal until Escape or q is pressed. Terminals only
// report key presses, so every press moves the viewpoint for one frame.
func Run(controller *internal.Controller, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	t := &Terminal{screen: screen, controller: controller, running: true}
	t.resize()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for t.running {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.Events(ev)
		case <-ticker.C:
			t.controller.Step(t.input)
			t.input = internal.Input{}
			t.Draw()
		}
	}
	return nil
}

// pump forwards screen events until the screen is finalized or done closes.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *Terminal) Events(event tcell.Event) {
	switch e := event.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	case *tcell.EventKey:
		t.keyEvent(e)
	}
}

func (t *Terminal) keyEvent(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.running = false
	case tcell.KeyUp:
		t.input.Forward = true
	case tcell.KeyDown:
		t.input.Backward = true
	case tcell.KeyLeft:
		t.input.TurnLeft = true
	case tcell.KeyRight:
		t.input.TurnRight = true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			t.running = false
		case 'w':
			t.input.Forward = true
		case 's':
			t.input.Backward = true
		case 'a':
			t.input.Left = true
		case 'd':
			t.input.Right = true
		case 'c':
			t.controller.ToggleCollision()
		}
	}
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	t.controller.Space().Resize(cols, rows*2)
}

// Draw copies the last rendered buffer to the screen, two pixel rows per cell.
func (t *Terminal) Draw() {
	space := t.controller.Space()
	pixels := space.Pixels()
	width := space.Width()
	for row := 0; row < space.Height()/2; row++ {
		top := pixels[row*2*width : (row*2+1)*width]
		bottom := pixels[(row*2+1)*width : (row*2+2)*width]
		for x := 0; x < width; x++ {
			style := tcell.StyleDefault.Foreground(cellColor(top[x])).Background(cellColor(bottom[x]))
			t.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func cellColor(c uint32) tcell.Color {
	_, r, g, b := engine.SplitARGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
