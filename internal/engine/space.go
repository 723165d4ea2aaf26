/*
 * Copyright (C) 2023 by Jason Figge
 */

package engine

const (
	DefaultClearance       = 0.1
	DefaultProjectionScale = 5.0
	DefaultFadeDistance    = 30.0
	DefaultCeiling         = uint32(0xFF1A1A2E)
	DefaultFloor           = uint32(0xFF3A3A3A)

	// MinDistance keeps the slab height finite for walls touching the eye.
	MinDistance = 1e-4
)

type Options struct {
	Clearance       float64
	ProjectionScale float64
	FadeDistance    float64
	Ceiling         uint32
	Floor           uint32
	TintR           float64
	TintG           float64
	TintB           float64
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Clearance:       DefaultClearance,
		ProjectionScale: DefaultProjectionScale,
		FadeDistance:    DefaultFadeDistance,
		Ceiling:         DefaultCeiling,
		Floor:           DefaultFloor,
		TintR:           200,
		TintG:           150,
		TintB:           100,
	}
}

func WithClearance(radius float64) Option {
	return func(o *Options) { o.Clearance = radius }
}

func WithProjectionScale(scale float64) Option {
	return func(o *Options) { o.ProjectionScale = scale }
}

func WithFadeDistance(distance float64) Option {
	return func(o *Options) {
		if distance > 0 {
			o.FadeDistance = distance
		}
	}
}

func WithBackground(ceiling, floor uint32) Option {
	return func(o *Options) {
		o.Ceiling = ceiling
		o.Floor = floor
	}
}

// WithTint sets the channel weights applied to wall brightness. Weights are
// clamped to [0,255].
func WithTint(r, g, b float64) Option {
	return func(o *Options) {
		o.TintR = clamp(r, 0, 255)
		o.TintG = clamp(g, 0, 255)
		o.TintB = clamp(b, 0, 255)
	}
}

// Space owns the walls, the viewpoint and the pixel buffer. Walls are
// referenced by their index in insertion order and are never mutated.
type Space struct {
	viewpoint Viewpoint
	walls     []Wall
	pixels    []uint32
	opts      Options
}

func NewSpace(viewpoint Viewpoint, opts ...Option) *Space {
	viewpoint.Width = max(viewpoint.Width, 0)
	viewpoint.Height = max(viewpoint.Height, 0)
	s := &Space{
		viewpoint: viewpoint,
		pixels:    make([]uint32, viewpoint.Width*viewpoint.Height),
		opts:      DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// AddWall appends a wall and returns its index.
func (s *Space) AddWall(wall Wall) int {
	s.walls = append(s.walls, wall)
	return len(s.walls) - 1
}

func (s *Space) Wall(index int) Wall {
	return s.walls[index]
}

func (s *Space) WallCount() int {
	return len(s.walls)
}

// Viewpoint gives direct access to the kinematic mutators, bypassing the
// collision check.
func (s *Space) Viewpoint() *Viewpoint {
	return &s.viewpoint
}

func (s *Space) Pose() Pose {
	return s.viewpoint.Pose()
}

func (s *Space) Options() Options {
	return s.opts
}

// Resize changes the output size and reallocates the pixel buffer. The
// buffer content is undefined until the next Render.
func (s *Space) Resize(width, height int) {
	s.viewpoint.Width = max(width, 0)
	s.viewpoint.Height = max(height, 0)
	s.pixels = make([]uint32, s.viewpoint.Width*s.viewpoint.Height)
}

// Pixels returns the buffer filled by the last Render call, row-major ARGB8888.
func (s *Space) Pixels() []uint32 {
	return s.pixels
}

func (s *Space) Width() int {
	return s.viewpoint.Width
}

func (s *Space) Height() int {
	return s.viewpoint.Height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
