/*
 * Copyright (C) 2023 by Jason Figge
 */

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestThudRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	thud := NewThud(rate, 90, 100*time.Millisecond)

	samples := make([][2]float64, 1024)
	n, ok := thud.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples, got %d (ok=%v)", len(samples), n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d is not mono: %f != %f", i, samples[i][0], samples[i][1])
		}
	}
	if thud.Err() != nil {
		t.Errorf("Expected no error, got: %v", thud.Err())
	}
}

func TestThudEndsByItself(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(10 * time.Millisecond)
	thud := NewThud(rate, 90, 10*time.Millisecond)

	total := 0
	samples := make([][2]float64, 128)
	for i := 0; i < 1000; i++ {
		n, ok := thud.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if n, ok := thud.Stream(samples); n != 0 || ok {
		t.Errorf("Expected a drained stream, got n=%d ok=%v", n, ok)
	}
}

func TestThudDecays(t *testing.T) {
	rate := beep.SampleRate(48000)
	thud := NewThud(rate, 90, 200*time.Millisecond)
	samples := make([][2]float64, rate.N(200*time.Millisecond))
	n, _ := thud.Stream(samples)

	peak := func(from, to int) float64 {
		p := 0.0
		for i := from; i < to; i++ {
			p = math.Max(p, math.Abs(samples[i][0]))
		}
		return p
	}
	quarter := n / 4
	if head, tail := peak(0, quarter), peak(n-quarter, n); tail >= head/2 {
		t.Errorf("Expected the tail (%f) well below the head (%f)", tail, head)
	}
}

func TestBumpBeforeInit(t *testing.T) {
	b := NewBumper()
	// must not touch the speaker
	b.Bump()
	b.Close()
}
