package fir

// Stage owns the animated pieces of one visual: morphers, snow layers, the
// camera, and any in-flight tween groups. One Update(dt) per frame advances
// everything in a fixed order, so callers wire a single call into their game
// loop instead of ticking each piece by hand.
//
// Single-threaded, like everything else in fir: the simulation loop owns
// the Stage.
type Stage struct {
	morphers []*Morpher
	snow     []*Snowfall
	camera   *OrbitCamera
	tweens   []*TweenGroup
	elapsed  float64
}

// NewStage creates an empty Stage.
func NewStage() *Stage {
	return &Stage{}
}

// AddMorpher registers a morpher. The first one added becomes the primary
// morpher whose blend Value the stage reports.
func (s *Stage) AddMorpher(m *Morpher) {
	if m == nil {
		panic("fir: cannot add nil morpher")
	}
	s.morphers = append(s.morphers, m)
}

// AddSnowfall registers a snow layer.
func (s *Stage) AddSnowfall(sf *Snowfall) {
	if sf == nil {
		panic("fir: cannot add nil snowfall")
	}
	s.snow = append(s.snow, sf)
}

// SetCamera attaches the camera the stage updates each frame. May be nil.
func (s *Stage) SetCamera(c *OrbitCamera) {
	s.camera = c
}

// Camera returns the attached camera, or nil.
func (s *Stage) Camera() *OrbitCamera {
	return s.camera
}

// AddTween registers a tween group. Finished groups are dropped during
// Update, so fire-and-forget is fine.
func (s *Stage) AddTween(g *TweenGroup) {
	if g == nil {
		panic("fir: cannot add nil tween group")
	}
	s.tweens = append(s.tweens, g)
}

// Morphers returns the registered morphers. The returned slice MUST NOT be
// mutated by the caller.
func (s *Stage) Morphers() []*Morpher {
	return s.morphers
}

// SetAssembled fans the assemble/scatter intent out to every registered
// morpher. Safe to call from an input handler between Update calls.
func (s *Stage) SetAssembled(assembled bool) {
	for _, m := range s.morphers {
		m.SetAssembled(assembled)
	}
}

// Assembled reports the primary morpher's intent, or false with no morphers.
func (s *Stage) Assembled() bool {
	if len(s.morphers) == 0 {
		return false
	}
	return s.morphers[0].Assembled()
}

// Value returns the primary morpher's blend value, or 0 with no morphers.
// Renderer-side effects key off this to cross-fade with the morph.
func (s *Stage) Value() float64 {
	if len(s.morphers) == 0 {
		return 0
	}
	return s.morphers[0].Value()
}

// Elapsed returns the total simulated time in seconds, for use as the time
// argument to Morpher.At.
func (s *Stage) Elapsed() float64 {
	return s.elapsed
}

// Update advances every registered piece by dt seconds.
func (s *Stage) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	if s.camera != nil {
		s.camera.Update()
	}
	for _, m := range s.morphers {
		m.Update(dt)
	}
	for _, sf := range s.snow {
		sf.Update(dt)
	}

	// Advance tweens, compacting out finished groups in place.
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	// Nil out the tail so finished groups aren't retained.
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}
