package fir

import (
	"math"
	"math/rand/v2"
)

// flake holds per-flake simulation state. Unexported; managed by Snowfall.
type flake struct {
	pos  Vec3
	fall float64 // fall speed in units per second
	seed float64 // sway phase in [0, 1)
	size float64
}

// SnowConfig controls how snowflakes are spawned and behave.
type SnowConfig struct {
	// Count is the pool size. All flakes exist from the start; there is
	// no emission ramp-up.
	Count int
	// Extent is the horizontal half-width of the snow volume on X and Z.
	Extent float64
	// Top is the height flakes respawn at; flakes below Floor wrap back up.
	Top float64
	// Floor is the height at which a flake is recycled to the top.
	Floor float64
	// FallSpeed is the range of per-flake fall speeds in units per second.
	FallSpeed Range
	// Size is the range of per-flake render sizes.
	Size Range
	// Sway is the horizontal sway amplitude. Zero keeps flakes falling
	// straight down.
	Sway float64
	// SwayFrequency is the sway speed in radians per second.
	SwayFrequency float64
}

// Snowfall is a decorative falling-particle layer with a preallocated pool.
// Flakes fall from Top to Floor and recycle to the top, so the layer reaches
// steady state immediately and never allocates during Update.
type Snowfall struct {
	config SnowConfig
	flakes []flake
	time   float64
}

// NewSnowfall creates a Snowfall with every flake already placed at a random
// point in the volume. A non-positive Count falls back to 256.
func NewSnowfall(cfg SnowConfig, r *rand.Rand) *Snowfall {
	count := cfg.Count
	if count <= 0 {
		count = 256
	}
	s := &Snowfall{
		config: cfg,
		flakes: make([]flake, count),
	}
	for i := range s.flakes {
		f := &s.flakes[i]
		f.pos = Vec3{
			X: Range{-cfg.Extent, cfg.Extent}.Random(r),
			Y: Range{cfg.Floor, cfg.Top}.Random(r),
			Z: Range{-cfg.Extent, cfg.Extent}.Random(r),
		}
		f.fall = cfg.FallSpeed.Random(r)
		if f.fall <= 0 {
			f.fall = 1
		}
		f.seed = r.Float64()
		f.size = cfg.Size.Random(r)
	}
	return s
}

// Count returns the number of flakes in the pool.
func (s *Snowfall) Count() int {
	return len(s.flakes)
}

// Config returns a pointer to the snowfall's config for live tuning.
// Count changes after construction are ignored; the pool is fixed.
func (s *Snowfall) Config() *SnowConfig {
	return &s.config
}

// Update advances the simulation by dt seconds.
func (s *Snowfall) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.time += dt
	span := s.config.Top - s.config.Floor
	for i := range s.flakes {
		f := &s.flakes[i]
		f.pos.Y -= f.fall * dt
		if f.pos.Y < s.config.Floor && span > 0 {
			f.pos.Y += span
		}
	}
}

// At returns flake i's current position. Sway is applied here rather than
// accumulated in Update so it stays a pure function of the clock and never
// walks a flake out of the volume.
func (s *Snowfall) At(i int) Vec3 {
	f := &s.flakes[i]
	p := f.pos
	if s.config.Sway != 0 {
		phase := f.seed * 2 * math.Pi
		p.X += s.config.Sway * math.Sin(s.time*s.config.SwayFrequency+phase)
		p.Z += s.config.Sway * math.Cos(s.time*s.config.SwayFrequency*0.8+phase)
	}
	return p
}

// SizeOf returns flake i's render size.
func (s *Snowfall) SizeOf(i int) float64 {
	return s.flakes[i].size
}
