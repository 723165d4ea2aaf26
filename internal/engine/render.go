/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

import "math"

// ColumnSample is the projection of one screen column. Top and Bottom bound
// the slab as [Top, Bottom); both are zero when the ray missed.
type ColumnSample struct {
	RelativeAngle float64
	Ray           RayResult
	Corrected     float64
	Top           int
	Bottom        int
	Color         uint32
}

// Render redraws the whole buffer for the current viewpoint and returns it.
func (s *Space) Render() []uint32 {
	// the size fields are reachable through Viewpoint()
	if s.viewpoint.Width < 0 || s.viewpoint.Height < 0 || len(s.pixels) != s.viewpoint.Width*s.viewpoint.Height {
		s.Resize(s.viewpoint.Width, s.viewpoint.Height)
	}
	s.fillBackground()
	width := s.viewpoint.Width
	for x := 0; x < width; x++ {
		column := s.Column(x)
		if !column.Ray.Hit {
			continue
		}
		for y := column.Top; y < column.Bottom; y++ {
			s.pixels[y*width+x] = column.Color
		}
	}
	return s.pixels
}

// fillBackground paints the ceiling above the horizon and the floor below it.
func (s *Space) fillBackground() {
	width := s.viewpoint.Width
	height := s.viewpoint.Height
	half := height / 2
	for y := 0; y < height; y++ {
		color := s.opts.Floor
		if y < half {
			color = s.opts.Ceiling
		}
		row := s.pixels[y*width : (y+1)*width]
		for x := range row {
			row[x] = color
		}
	}
}

// Column projects screen column x. Columns step ViewAngle/Width degrees apart
// starting at -ViewAngle/2, so the last column stops one step short of the
// right edge of the field of view.
func (s *Space) Column(x int) ColumnSample {
	vp := &s.viewpoint
	sample := ColumnSample{Ray: missed()}
	if vp.Width <= 0 {
		return sample
	}

	step := vp.ViewAngle / float64(vp.Width)
	sample.RelativeAngle = -vp.HalfFov() + step*float64(x)
	sample.Ray = s.CastRay(vp.Towards + sample.RelativeAngle)
	if !sample.Ray.Hit {
		return sample
	}

	// fisheye
	sample.Corrected = sample.Ray.Distance * math.Cos(sample.RelativeAngle*degToRad)
	if sample.Corrected < MinDistance {
		sample.Corrected = MinDistance
	}

	height := float64(vp.Height)
	slab := s.opts.ProjectionScale / sample.Corrected * height * 0.5
	sample.Top = int(clamp((height-slab)/2, 0, height))
	sample.Bottom = int(clamp((height+slab)/2, 0, height))
	sample.Color = s.shade(s.walls[sample.Ray.Wall], sample.Corrected)
	return sample
}

// shade lights a wall by its own orientation, not by the ray's incidence, and
// fades it to black at the fade distance.
func (s *Space) shade(wall Wall, distance float64) uint32 {
	brightness := math.Abs(math.Cos(wall.Orientation()))
	brightness *= math.Max(0, 1-distance/s.opts.FadeDistance)
	return ARGB(
		uint8(brightness*s.opts.TintR),
		uint8(brightness*s.opts.TintG),
		uint8(brightness*s.opts.TintB),
	)
}
