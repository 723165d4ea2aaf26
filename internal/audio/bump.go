/*
 * Copyright (C) 2023 by Jason Figge
 */

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bumpFreq     = 90
	bumpDuration = 120 * time.Millisecond
)

// Bumper plays a short low thud whenever the viewpoint walks into a wall.
type Bumper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewBumper() *Bumper {
	return &Bumper{mixer: &beep.Mixer{}}
}

func (b *Bumper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Bump is a no-op until Init succeeded.
func (b *Bumper) Bump() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Add(NewThud(sampleRate, bumpFreq, bumpDuration))
	speaker.Unlock()
}

func (b *Bumper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Thud is a short low tone whose pitch sags and whose level decays
// exponentially from the first sample; it ends by itself after its duration.
type Thud struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
	phase float64
}

func NewThud(sr beep.SampleRate, freq float64, duration time.Duration) *Thud {
	return &Thud{sr: sr, freq: freq, total: sr.N(duration)}
}

func (g *Thud) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for n = range samples {
		if g.pos >= g.total {
			return n, true
		}
		progress := float64(g.pos) / float64(g.total)

		// pitch drops by a third over the cue
		g.phase += g.freq * (1 - progress/3) / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := 0.5*math.Sin(2*math.Pi*g.phase) + 0.25*math.Sin(4*math.Pi*g.phase)
		sample *= 0.4 * math.Exp(-5*progress)

		samples[n][0] = sample
		samples[n][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Thud) Err() error {
	return nil
}
