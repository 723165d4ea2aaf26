/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "image/color"

// ARGB packs an opaque colour in the 0xAARRGGBB layout used by the buffer.
func ARGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func SplitARGB(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func ToRGBA(c uint32) color.RGBA {
	a, r, g, b := SplitARGB(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// CopyRGBA writes the buffer as RGBA bytes, four per pixel. dst must hold at
// least Width*Height*4 bytes; extra pixels are left untouched.
func (s *Space) CopyRGBA(dst []byte) {
	for i, c := range s.pixels {
		base := i * 4
		if base+3 >= len(dst) {
			return
		}
		a, r, g, b := SplitARGB(c)
		dst[base] = r
		dst[base+1] = g
		dst[base+2] = b
		dst[base+3] = a
	}
}
